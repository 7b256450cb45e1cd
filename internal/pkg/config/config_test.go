//go:build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("test config is valid", func(t *testing.T) {
		require.NoError(t, NewTestConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "short secret", mutate: func(c *Config) { c.JWT.Secret = "short" }, want: "JWT_SECRET"},
		{name: "bad token duration", mutate: func(c *Config) { c.JWT.AccessTokenDuration = "forever" }, want: "JWT_ACCESS_TOKEN_DURATION"},
		{name: "unknown time zone", mutate: func(c *Config) { c.Booking.TimeZone = "Mars/Olympus" }, want: "BOOKING_TIMEZONE"},
		{name: "window below horizon", mutate: func(c *Config) { c.Booking.MaxWindowDays = 30 }, want: "BOOKING_MAX_WINDOW_DAYS"},
		{name: "no brokers", mutate: func(c *Config) { c.Kafka.Brokers = nil }, want: "KAFKA_BROKERS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		cfg := NewTestConfig()
		cfg.JWT.Secret = ""
		cfg.Kafka.Brokers = nil

		err := cfg.Validate()

		assert.ErrorContains(t, err, "JWT_SECRET")
		assert.ErrorContains(t, err, "KAFKA_BROKERS")
	})
}

func TestBuildDSN(t *testing.T) {
	cfg := DBConfig{User: "u", Password: "p", Host: "db", Port: "5432", DBName: "staybook", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "postgres://u:p@db:5432/staybook?sslmode=disable&timezone=UTC", cfg.BuildDSN())
}
