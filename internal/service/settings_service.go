package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/segyhp/consignment-engine/internal/logger"
	"github.com/segyhp/consignment-engine/internal/opendays"
	"github.com/segyhp/consignment-engine/internal/repository"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
)

// Invalidator drops a cached copy of the settings it serves.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type SettingsService struct {
	SettingsRepo repository.SettingsRepository
	OpenDays     ConfigProvider
	Cache        Invalidator
	log          *zap.Logger
}

func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	openDays ConfigProvider,
	cache Invalidator,
	log *zap.Logger,
) *SettingsService {
	return &SettingsService{
		SettingsRepo: settingsRepo,
		OpenDays:     openDays,
		Cache:        cache,
		log:          logger.OrNop(log),
	}
}

// GetOpenDays returns the schedule currently in effect, all seven days included
func (s *SettingsService) GetOpenDays(ctx context.Context) map[string]bool {
	return s.OpenDays.GetWeeklyOpenDaysConfig(ctx).Names()
}

// UpdateOpenDays replaces the weekly schedule. Days left out of days are closed.
func (s *SettingsService) UpdateOpenDays(ctx context.Context, days map[string]bool) (map[string]bool, error) {
	if len(days) == 0 {
		return nil, customError.WrapValidation("at least one weekday must be given")
	}

	cfg, err := opendays.ParseWeeklyConfig(days)
	if err != nil {
		return nil, err
	}
	if !cfg.HasOpenDay() {
		return nil, customError.WrapInvalidConfiguration("the shop must be open on at least one weekday")
	}

	names := cfg.Names()
	if err := s.SettingsRepo.SaveWeeklyOpenDays(ctx, names); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	log := logger.OrNop(s.log)
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			log.Warn("open days cache not invalidated", zap.Error(err))
		}
	}

	log.Info("open days updated", zap.Any("days", names))
	return names, nil
}
