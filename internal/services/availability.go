package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
	"github.com/sbilibin2017/nailstudio-booking/internal/validation"
)

//go:generate mockgen -source=availability.go -destination=availability_mock.go -package=services

// AvailabilityCache caches the slots of a day.
type AvailabilityCache interface {
	Get(ctx context.Context, date string) ([]models.HourSlot, error)
	Set(ctx context.Context, date string, slots []models.HourSlot) error
}

// AvailabilityService answers which hours of a day can be booked.
// Every configured slot is reported available; there is no occupancy check.
type AvailabilityService struct {
	cache AvailabilityCache
	slots []string
	now   func() time.Time
}

// NewAvailabilityService creates a new AvailabilityService over the configured slots.
func NewAvailabilityService(cache AvailabilityCache, slots []string, now func() time.Time) *AvailabilityService {
	return &AvailabilityService{
		cache: cache,
		slots: slots,
		now:   now,
	}
}

// AvailableHours returns the slots for date, reading through the cache.
func (s *AvailabilityService) AvailableHours(ctx context.Context, date string) ([]models.HourSlot, error) {
	log := logger.FromContext(ctx)

	if err := apperr.NewValidationError(validation.ValidateDate(date, s.now())); err != nil {
		return nil, err
	}

	slots, err := s.cache.Get(ctx, date)
	if err == nil {
		return slots, nil
	}
	log.Debugw("available hours cache miss", "date", date, "error", err)

	slots = make([]models.HourSlot, 0, len(s.slots))
	for _, h := range s.slots {
		slots = append(slots, models.HourSlot{Hour: h, Available: true})
	}

	if err := s.cache.Set(ctx, date, slots); err != nil {
		log.Errorw("failed to cache available hours", "date", date, "error", err)
	}

	return slots, nil
}
