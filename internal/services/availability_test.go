package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
	"github.com/sbilibin2017/nailstudio-booking/internal/services"
	"github.com/sbilibin2017/nailstudio-booking/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityService_AvailableHours(t *testing.T) {
	slots := []string{"09:00", "10:00"}
	all := []models.HourSlot{{Hour: "09:00", Available: true}, {Hour: "10:00", Available: true}}

	tests := []struct {
		name      string
		date      string
		setup     func(m *services.MockAvailabilityCache)
		want      []models.HourSlot
		wantValid []string
	}{
		{
			name: "cache hit",
			date: "2026-10-20",
			setup: func(m *services.MockAvailabilityCache) {
				m.EXPECT().Get(gomock.Any(), "2026-10-20").Return([]models.HourSlot{{Hour: "11:00", Available: true}}, nil)
			},
			want: []models.HourSlot{{Hour: "11:00", Available: true}},
		},
		{
			name: "cache miss fills cache",
			date: "2026-10-20",
			setup: func(m *services.MockAvailabilityCache) {
				m.EXPECT().Get(gomock.Any(), "2026-10-20").Return(nil, errors.New("miss"))
				m.EXPECT().Set(gomock.Any(), "2026-10-20", all).Return(nil)
			},
			want: all,
		},
		{
			name: "cache write failure still answers",
			date: "2026-10-18",
			setup: func(m *services.MockAvailabilityCache) {
				m.EXPECT().Get(gomock.Any(), "2026-10-18").Return(nil, errors.New("miss"))
				m.EXPECT().Set(gomock.Any(), "2026-10-18", all).Return(errors.New("redis down"))
			},
			want: all,
		},
		{
			name:      "past date",
			date:      "2026-10-17",
			setup:     func(m *services.MockAvailabilityCache) {},
			wantValid: []string{validation.MsgDateInPast},
		},
		{
			name:      "bad date",
			date:      "tomorrow",
			setup:     func(m *services.MockAvailabilityCache) {},
			wantValid: []string{validation.MsgDateInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCache := services.NewMockAvailabilityCache(ctrl)
			tt.setup(mockCache)

			svc := services.NewAvailabilityService(mockCache, slots, clock)
			got, err := svc.AvailableHours(context.Background(), tt.date)

			if tt.wantValid != nil {
				var vErr *apperr.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tt.wantValid, vErr.Messages)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
