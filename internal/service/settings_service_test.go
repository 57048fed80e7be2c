package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"project-plan-api/internal/domain"
	"project-plan-api/internal/dto"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

func TestGetSettings_DefaultsAreNotPersisted(t *testing.T) {
	userID := uuid.New()

	saved := false
	repo := &MockSettingsRepository{
		SaveFunc: func(ctx context.Context, settings *domain.UserSettings) error {
			saved = true
			return nil
		},
	}

	svc := NewSettingsService(repo, zap.NewNop())

	resp, err := svc.GetSettings(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, 40.0, resp.WeeklyCapacityHours)
	assert.Equal(t, 14, resp.SprintLengthDays)
	assert.Equal(t, 8.0, resp.WorkHoursPerDay)
	assert.False(t, saved, "reading defaults must not write them")
}

func TestGetSettings_ReturnsStoredValues(t *testing.T) {
	userID := uuid.New()

	repo := &MockSettingsRepository{
		FindByUserFunc: func(ctx context.Context, id uuid.UUID) (*domain.UserSettings, error) {
			return &domain.UserSettings{
				UserID:              userID,
				WeeklyCapacityHours: 32,
				SprintLengthDays:    7,
				WorkHoursPerDay:     6.5,
			}, nil
		},
	}

	svc := NewSettingsService(repo, zap.NewNop())

	resp, err := svc.GetSettings(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 32.0, resp.WeeklyCapacityHours)
	assert.Equal(t, 7, resp.SprintLengthDays)
	assert.Equal(t, 6.5, resp.WorkHoursPerDay)
}

func TestUpdateSettings_ClampsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateSettingsRequest
		want dto.SettingsResponse
	}{
		{
			name: "above the maximums",
			req: dto.UpdateSettingsRequest{
				WeeklyCapacityHours: float64Ptr(200),
				SprintLengthDays:    intPtr(90),
				WorkHoursPerDay:     float64Ptr(30),
			},
			want: dto.SettingsResponse{WeeklyCapacityHours: 80, SprintLengthDays: 28, WorkHoursPerDay: 24},
		},
		{
			name: "below the minimums",
			req: dto.UpdateSettingsRequest{
				WeeklyCapacityHours: float64Ptr(0),
				SprintLengthDays:    intPtr(-3),
				WorkHoursPerDay:     float64Ptr(0.2),
			},
			want: dto.SettingsResponse{WeeklyCapacityHours: 1, SprintLengthDays: 1, WorkHoursPerDay: 1},
		},
		{
			name: "in range is kept",
			req: dto.UpdateSettingsRequest{
				WeeklyCapacityHours: float64Ptr(36),
				SprintLengthDays:    intPtr(10),
				WorkHoursPerDay:     float64Ptr(7),
			},
			want: dto.SettingsResponse{WeeklyCapacityHours: 36, SprintLengthDays: 10, WorkHoursPerDay: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()

			var savedSettings *domain.UserSettings
			repo := &MockSettingsRepository{
				SaveFunc: func(ctx context.Context, settings *domain.UserSettings) error {
					savedSettings = settings
					return nil
				},
			}

			svc := NewSettingsService(repo, zap.NewNop())

			resp, err := svc.UpdateSettings(context.Background(), userID, &tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.want.WeeklyCapacityHours, resp.WeeklyCapacityHours)
			assert.Equal(t, tt.want.SprintLengthDays, resp.SprintLengthDays)
			assert.Equal(t, tt.want.WorkHoursPerDay, resp.WorkHoursPerDay)
			require.NotNil(t, savedSettings)
			assert.Equal(t, tt.want.WeeklyCapacityHours, savedSettings.WeeklyCapacityHours)
		})
	}
}

func TestUpdateSettings_PartialUpdateKeepsOtherFields(t *testing.T) {
	userID := uuid.New()

	repo := &MockSettingsRepository{
		FindByUserFunc: func(ctx context.Context, id uuid.UUID) (*domain.UserSettings, error) {
			return &domain.UserSettings{
				UserID:              userID,
				WeeklyCapacityHours: 32,
				SprintLengthDays:    7,
				WorkHoursPerDay:     6,
			}, nil
		},
	}

	svc := NewSettingsService(repo, zap.NewNop())

	resp, err := svc.UpdateSettings(context.Background(), userID, &dto.UpdateSettingsRequest{
		SprintLengthDays: intPtr(21),
	})

	require.NoError(t, err)
	assert.Equal(t, 32.0, resp.WeeklyCapacityHours)
	assert.Equal(t, 21, resp.SprintLengthDays)
	assert.Equal(t, 6.0, resp.WorkHoursPerDay)
}
