package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
)

//go:generate mockgen -source=available_hours.go -destination=available_hours_mock.go -package=handlers

// HoursReader defines the interface that the availability service must implement.
type HoursReader interface {
	AvailableHours(ctx context.Context, date string) ([]models.HourSlot, error)
}

// AvailableHoursResponse lists the slots of a day
// swagger:model AvailableHoursResponse
type AvailableHoursResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`

	// Requested date
	// default: 2026-10-20
	Date string `json:"fecha"`

	// Slots of the day
	Hours []models.HourSlot `json:"horas"`
}

// NewAvailableHoursHandler returns an HTTP handler listing bookable hours of a day.
// @Summary Available hours
// @Description Returns the configured slots of a day. Every slot is currently reported available.
// @Tags bookings
// @Produce json
// @Param fecha query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} handlers.AvailableHoursResponse "Slots of the day"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or past date"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /available-hours [get]
func NewAvailableHoursHandler(svc HoursReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		date := sanitize(r.URL.Query().Get("fecha"))

		hours, err := svc.AvailableHours(ctx, date)
		if err != nil {
			var vErr *apperr.ValidationError
			if errors.As(err, &vErr) {
				writeError(w, http.StatusBadRequest, vErr.Error())
				return
			}
			logger.FromContext(ctx).Errorw("failed to list available hours", "date", date, "err", err)
			writeError(w, http.StatusInternalServerError, internalMessage(err))
			return
		}

		writeJSON(w, http.StatusOK, AvailableHoursResponse{
			Success: true,
			Date:    date,
			Hours:   hours,
		})
	}
}
