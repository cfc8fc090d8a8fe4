package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/consignment-engine/internal/cache"
	"github.com/segyhp/consignment-engine/internal/mocks"
	"github.com/segyhp/consignment-engine/internal/opendays"
)

func weekdaysOnly() map[string]bool {
	return map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true, "friday": true,
		"saturday": false, "sunday": false,
	}
}

func TestOpenDaysProvider_CacheHit(t *testing.T) {
	mockSettings := &mocks.MockSettingsRepository{}
	mockCache := &mocks.MockCache{}

	mockCache.On("Get", mock.Anything, openDaysCacheKey).Return(`{"monday":true,"sunday":false}`, nil)

	provider := NewOpenDaysProvider(mockSettings, mockCache, time.Minute, nil)
	cfg := provider.GetWeeklyOpenDaysConfig(context.Background())

	assert.True(t, cfg.IsOpen(time.Monday))
	assert.False(t, cfg.IsOpen(time.Sunday))
	assert.False(t, cfg.IsOpen(time.Tuesday))

	mockCache.AssertExpectations(t)
	mockSettings.AssertNotCalled(t, "GetWeeklyOpenDays", mock.Anything)
}

func TestOpenDaysProvider_CacheMissLoadsAndStores(t *testing.T) {
	mockSettings := &mocks.MockSettingsRepository{}
	mockCache := &mocks.MockCache{}

	mockCache.On("Get", mock.Anything, openDaysCacheKey).Return("", cache.ErrMiss)
	mockSettings.On("GetWeeklyOpenDays", mock.Anything).Return(weekdaysOnly(), nil)
	mockCache.On("Set", mock.Anything, openDaysCacheKey, mock.AnythingOfType("string"), 5*time.Minute).Return(nil)

	provider := NewOpenDaysProvider(mockSettings, mockCache, 5*time.Minute, nil)
	cfg := provider.GetWeeklyOpenDaysConfig(context.Background())

	assert.True(t, cfg.IsOpen(time.Friday))
	assert.False(t, cfg.IsOpen(time.Saturday))

	mockSettings.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestOpenDaysProvider_FallsBackToAllOpen(t *testing.T) {
	tests := []struct {
		name  string
		days  map[string]bool
		dbErr error
	}{
		{name: "repository failure", dbErr: errors.New("connection refused")},
		{name: "never saved", days: map[string]bool{}},
		{name: "unknown weekday", days: map[string]bool{"funday": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSettings := &mocks.MockSettingsRepository{}
			mockSettings.On("GetWeeklyOpenDays", mock.Anything).Return(tt.days, tt.dbErr)

			provider := NewOpenDaysProvider(mockSettings, nil, time.Minute, nil)
			cfg := provider.GetWeeklyOpenDaysConfig(context.Background())

			assert.Equal(t, opendays.AllOpen(), cfg)
		})
	}
}

func TestOpenDaysProvider_CacheErrorReadsDatabase(t *testing.T) {
	mockSettings := &mocks.MockSettingsRepository{}
	mockCache := &mocks.MockCache{}

	mockCache.On("Get", mock.Anything, openDaysCacheKey).Return("", errors.New("redis down"))
	mockCache.On("Set", mock.Anything, openDaysCacheKey, mock.Anything, time.Minute).Return(errors.New("redis down"))
	mockSettings.On("GetWeeklyOpenDays", mock.Anything).Return(weekdaysOnly(), nil)

	provider := NewOpenDaysProvider(mockSettings, mockCache, time.Minute, nil)
	cfg := provider.GetWeeklyOpenDaysConfig(context.Background())

	assert.False(t, cfg.IsOpen(time.Sunday))
	assert.True(t, cfg.IsOpen(time.Wednesday))
}

func TestOpenDaysProvider_RefreshAndInvalidate(t *testing.T) {
	mockSettings := &mocks.MockSettingsRepository{}
	mockCache := &mocks.MockCache{}

	mockSettings.On("GetWeeklyOpenDays", mock.Anything).Return(weekdaysOnly(), nil)
	mockCache.On("Set", mock.Anything, openDaysCacheKey, mock.Anything, time.Minute).Return(nil)
	mockCache.On("Del", mock.Anything, openDaysCacheKey).Return(nil)

	provider := NewOpenDaysProvider(mockSettings, mockCache, time.Minute, nil)

	assert.NoError(t, provider.Refresh(context.Background()))
	assert.NoError(t, provider.Invalidate(context.Background()))

	mockCache.AssertExpectations(t)
}

func TestOpenDaysProvider_RefreshPropagatesError(t *testing.T) {
	mockSettings := &mocks.MockSettingsRepository{}
	mockSettings.On("GetWeeklyOpenDays", mock.Anything).Return(nil, errors.New("timeout"))

	provider := NewOpenDaysProvider(mockSettings, nil, time.Minute, nil)

	assert.Error(t, provider.Refresh(context.Background()))
}
