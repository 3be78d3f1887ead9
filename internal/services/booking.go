package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
	"github.com/sbilibin2017/nailstudio-booking/internal/pricing"
	"github.com/sbilibin2017/nailstudio-booking/internal/validation"
)

//go:generate mockgen -source=booking.go -destination=booking_mock.go -package=services

// BookingWriter persists bookings.
type BookingWriter interface {
	Save(ctx context.Context, b *models.Booking) (int64, error)
}

// BookingNotifier sends the customer a confirmation of a stored booking.
type BookingNotifier interface {
	SendBookingConfirmation(ctx context.Context, b models.Booking) error
}

// BookingService validates, prices and stores bookings.
type BookingService struct {
	writer      BookingWriter
	kafkaWriter KafkaWriter
	notifier    BookingNotifier
	now         func() time.Time
}

// NewBookingService creates a new BookingService. kafkaWriter and notifier may be nil.
// now decides what "today" is for date validation.
func NewBookingService(
	writer BookingWriter,
	kafkaWriter KafkaWriter,
	notifier BookingNotifier,
	now func() time.Time,
) *BookingService {
	return &BookingService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		notifier:    notifier,
		now:         now,
	}
}

// Book stores a pending booking for in and returns it with its id and price.
// Validation failures are returned as *apperr.ValidationError before any store access.
func (s *BookingService) Book(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	log := logger.FromContext(ctx)

	if err := apperr.NewValidationError(validation.ValidateBooking(in, s.now())); err != nil {
		log.Warnw("booking rejected", "error", err)
		return nil, err
	}

	b := models.Booking{
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		Age:           in.Age,
		Service:       in.Service,
		Date:          in.Date,
		Time:          in.Time,
		HandsAndFeet:  in.HandsAndFeet,
		SpecialDesign: in.SpecialDesign,
		FirstVisit:    in.FirstVisit,
		Comments:      in.Comments,
		Price:         pricing.Price(in.Service, in.HandsAndFeet),
		Status:        models.StatusPending,
	}

	id, err := s.writer.Save(ctx, &b)
	if err != nil {
		log.Errorw("failed to save booking", "error", err)
		return nil, err
	}
	b.ID = id

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventBookingCreated, b.ID, b))

	if s.notifier != nil {
		if err := s.notifier.SendBookingConfirmation(ctx, b); err != nil {
			log.Errorw("failed to send booking confirmation", "booking_id", b.ID, "error", err)
		}
	}

	return &b, nil
}
