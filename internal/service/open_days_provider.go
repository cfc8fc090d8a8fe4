package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/segyhp/consignment-engine/internal/cache"
	"github.com/segyhp/consignment-engine/internal/logger"
	"github.com/segyhp/consignment-engine/internal/opendays"
	"github.com/segyhp/consignment-engine/internal/repository"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
)

const openDaysCacheKey = "settings:open_days"

// ConfigProvider supplies the shop's weekly open/closed schedule.
type ConfigProvider interface {
	GetWeeklyOpenDaysConfig(ctx context.Context) opendays.WeeklyConfig
}

// OpenDaysProvider reads the weekly schedule through the cache, falling back to
// the settings table. Whenever the schedule cannot be loaded or was never saved
// every day is treated as open.
type OpenDaysProvider struct {
	settings repository.SettingsRepository
	cache    cache.Cache
	ttl      time.Duration
	log      *zap.Logger
}

func NewOpenDaysProvider(
	settings repository.SettingsRepository,
	cache cache.Cache,
	ttl time.Duration,
	log *zap.Logger,
) *OpenDaysProvider {
	return &OpenDaysProvider{
		settings: settings,
		cache:    cache,
		ttl:      ttl,
		log:      logger.OrNop(log),
	}
}

func (p *OpenDaysProvider) GetWeeklyOpenDaysConfig(ctx context.Context) opendays.WeeklyConfig {
	if cfg, ok := p.fromCache(ctx); ok {
		return cfg
	}

	days, err := p.settings.GetWeeklyOpenDays(ctx)
	if err != nil {
		p.log.Warn("loading open days failed, treating every day as open", zap.Error(err))
		return opendays.AllOpen()
	}

	cfg, err := opendays.ParseWeeklyConfig(days)
	if err != nil {
		p.log.Warn("stored open days are invalid, treating every day as open", zap.Error(err))
		return opendays.AllOpen()
	}
	if len(cfg) == 0 {
		cfg = opendays.AllOpen()
	}

	p.store(ctx, cfg)
	return cfg
}

// Refresh reloads the schedule from the settings table into the cache.
func (p *OpenDaysProvider) Refresh(ctx context.Context) error {
	days, err := p.settings.GetWeeklyOpenDays(ctx)
	if err != nil {
		return err
	}
	cfg, err := opendays.ParseWeeklyConfig(days)
	if err != nil {
		return err
	}
	if len(cfg) == 0 {
		cfg = opendays.AllOpen()
	}

	p.store(ctx, cfg)
	return nil
}

// Invalidate drops the cached schedule so the next read goes to the database.
func (p *OpenDaysProvider) Invalidate(ctx context.Context) error {
	if p.cache == nil {
		return nil
	}
	if err := p.cache.Del(ctx, openDaysCacheKey); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}

func (p *OpenDaysProvider) fromCache(ctx context.Context) (opendays.WeeklyConfig, bool) {
	if p.cache == nil {
		return nil, false
	}

	raw, err := p.cache.Get(ctx, openDaysCacheKey)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			p.log.Warn("reading cached open days failed", zap.Error(err))
		}
		return nil, false
	}

	days := map[string]bool{}
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		p.log.Warn("cached open days are unreadable", zap.Error(err))
		return nil, false
	}
	cfg, err := opendays.ParseWeeklyConfig(days)
	if err != nil || len(cfg) == 0 {
		return nil, false
	}

	return cfg, true
}

func (p *OpenDaysProvider) store(ctx context.Context, cfg opendays.WeeklyConfig) {
	if p.cache == nil {
		return
	}

	raw, err := json.Marshal(cfg.Names())
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, openDaysCacheKey, string(raw), p.ttl); err != nil {
		p.log.Warn("caching open days failed", zap.Error(err))
	}
}
