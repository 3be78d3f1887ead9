package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
)

// BookingWriteRepository inserts bookings.
type BookingWriteRepository struct {
	db *sqlx.DB
}

func NewBookingWriteRepository(db *sqlx.DB) *BookingWriteRepository {
	return &BookingWriteRepository{db: db}
}

// Save inserts b with a server-assigned creation time and returns the new id.
func (r *BookingWriteRepository) Save(ctx context.Context, b *models.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (
			name, phone, email, age, service, booking_date, booking_time,
			hands_and_feet, special_design, first_visit, comments, price,
			created_at, status
		) VALUES (
			$1, $2, $3, $4, $5, $6::DATE, $7::TIME,
			$8, $9, $10, $11, $12,
			NOW(), $13
		)
		RETURNING id
	`
	args := []any{
		b.Name, b.Phone, b.Email, b.Age, b.Service, b.Date, b.Time,
		b.HandsAndFeet, b.SpecialDesign, b.FirstVisit, b.Comments, b.Price,
		b.Status,
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query",
		"sql", singleLine(query),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, &apperr.StorageError{Err: err}
	}
	return id, nil
}
