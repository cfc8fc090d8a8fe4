package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080", Host: "0.0.0.0", Env: "development"},
		Database:  DatabaseConfig{URL: "postgres://localhost/consignment"},
		Scheduler: SchedulerConfig{Interval: "1h", Timezone: "UTC"},
		Business: BusinessConfig{
			DefaultCommissionRate: "0.15",
			MaxRentalOpenDays:     365,
			OpenDaysCacheTTL:      "10m",
		},
		Health: HealthConfig{Timeout: "5s"},
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/shop?sslmode=disable")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DEFAULT_COMMISSION_RATE", "0.20")
	t.Setenv("SCHEDULER_TIMEZONE", "UTC")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres://user:pass@db:5432/shop?sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.GetDefaultCommissionRate().Equal(decimal.RequireFromString("0.20")))
	assert.Equal(t, 365, cfg.Business.MaxRentalOpenDays)
	assert.Equal(t, 10*time.Minute, cfg.GetOpenDaysCacheTTL())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "SERVER_PORT"},
		{
			name:    "no database",
			mutate:  func(c *Config) { c.Database = DatabaseConfig{} },
			wantErr: "DATABASE_URL",
		},
		{
			name:    "commission rate not a decimal",
			mutate:  func(c *Config) { c.Business.DefaultCommissionRate = "fifteen" },
			wantErr: "DEFAULT_COMMISSION_RATE",
		},
		{
			name:    "commission rate above one",
			mutate:  func(c *Config) { c.Business.DefaultCommissionRate = "1.5" },
			wantErr: "between 0 and 1",
		},
		{
			name:    "non positive max rental",
			mutate:  func(c *Config) { c.Business.MaxRentalOpenDays = 0 },
			wantErr: "MAX_RENTAL_OPEN_DAYS",
		},
		{
			name:    "bad cache ttl",
			mutate:  func(c *Config) { c.Business.OpenDaysCacheTTL = "soon" },
			wantErr: "OPEN_DAYS_CACHE_TTL",
		},
		{
			name:    "bad timezone",
			mutate:  func(c *Config) { c.Scheduler.Timezone = "Mars/Olympus" },
			wantErr: "SCHEDULER_TIMEZONE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "shop", Password: "secret", Name: "consignment", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=shop password=secret dbname=consignment sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "cache:6379", RedisConfig{Host: "cache", Port: "6379"}.Addr())
}

func TestIsDevelopment(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())

	cfg.Server.Env = "production"
	assert.False(t, cfg.IsDevelopment())
}
