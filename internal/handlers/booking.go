package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
)

//go:generate mockgen -source=booking.go -destination=booking_mock.go -package=handlers

// BookingCreator defines the interface that the booking service must implement.
type BookingCreator interface {
	Book(ctx context.Context, in models.BookingInput) (*models.Booking, error)
}

// BookingData echoes the stored booking back to the client
// swagger:model BookingData
type BookingData struct {
	// Customer name
	// default: Ana
	Name string `json:"nombre"`

	// Customer phone
	// default: 11 5555-1234
	Phone string `json:"telefono"`

	// Service code
	// default: manicura
	Service string `json:"servicio"`

	// Booking date
	// default: 2026-10-20
	Date string `json:"fecha"`

	// Booking time
	// default: 10:00
	Time string `json:"hora"`

	// Computed price
	// default: 22500
	Price int64 `json:"precio"`
}

// BookingResponse represents a successful booking
// swagger:model BookingResponse
type BookingResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`

	// Success message
	// default: booking created successfully
	Message string `json:"message"`

	// Id of the stored booking
	// default: 1
	BookingID int64 `json:"turno_id"`

	// Stored booking fields
	Data BookingData `json:"datos"`
}

// BookingValidationResponse lists every violated rule
// swagger:model BookingValidationResponse
type BookingValidationResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// Validation messages
	Errors []string `json:"errors"`
}

// NewBookingHandler returns an HTTP handler for booking submission.
// @Summary Book an appointment
// @Description Validates the booking form, computes the price and stores a pending booking.
// @Tags bookings
// @Accept x-www-form-urlencoded
// @Produce json
// @Param nombre formData string true "Customer name"
// @Param telefono formData string true "Customer phone"
// @Param email formData string false "Customer email"
// @Param edad formData int false "Customer age"
// @Param servicio formData string true "Service code" Enums(manicura, pedicura, nailart, gel)
// @Param fecha formData string true "Date (YYYY-MM-DD)"
// @Param hora formData string true "Time (HH:MM)"
// @Param manos_pies formData string false "Hands and feet combo"
// @Param diseño_especial formData string false "Special design"
// @Param primera_vez formData string false "First visit"
// @Param comentarios formData string false "Comments"
// @Success 200 {object} handlers.BookingResponse "Booking stored"
// @Failure 400 {object} handlers.BookingValidationResponse "Validation failed"
// @Failure 405 {object} handlers.ErrorResponse "Method not allowed"
// @Failure 500 {object} handlers.ErrorResponse "Database error"
// @Router /bookings [post]
func NewBookingHandler(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, apperr.ErrMethodNotAllowed.Error())
			return
		}

		if err := parseForm(r); err != nil {
			logger.FromContext(ctx).Warnw("invalid booking form", "error", err)
			writeJSON(w, http.StatusBadRequest, BookingValidationResponse{
				Success: false,
				Errors:  []string{"invalid form data"},
			})
			return
		}

		in := models.BookingInput{
			Name:          formText(r, "nombre"),
			Phone:         formText(r, "telefono"),
			Email:         formEmail(ctx, r, "email"),
			Age:           formInt(ctx, r, "edad"),
			Service:       models.NormalizeService(formText(r, "servicio")),
			Date:          formText(r, "fecha"),
			Time:          formText(r, "hora"),
			HandsAndFeet:  formCheckbox(r, "manos_pies"),
			SpecialDesign: formCheckbox(r, "diseño_especial", "diseno_especial"),
			FirstVisit:    formCheckbox(r, "primera_vez"),
			Comments:      formText(r, "comentarios"),
		}

		booking, err := svc.Book(ctx, in)
		if err != nil {
			var vErr *apperr.ValidationError
			if errors.As(err, &vErr) {
				writeJSON(w, http.StatusBadRequest, BookingValidationResponse{
					Success: false,
					Errors:  vErr.Messages,
				})
				return
			}
			logger.FromContext(ctx).Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, internalMessage(err))
			return
		}

		writeJSON(w, http.StatusOK, BookingResponse{
			Success:   true,
			Message:   "booking created successfully",
			BookingID: booking.ID,
			Data: BookingData{
				Name:    booking.Name,
				Phone:   booking.Phone,
				Service: booking.Service,
				Date:    booking.Date,
				Time:    booking.Time,
				Price:   booking.Price,
			},
		})
	}
}

// msgInternal is returned for failures that are not storage errors; the cause is only logged.
const msgInternal = "internal server error"

// internalMessage surfaces storage failures verbatim and hides anything else.
func internalMessage(err error) string {
	var sErr *apperr.StorageError
	if errors.As(err, &sErr) {
		return sErr.Error()
	}
	return msgInternal
}
