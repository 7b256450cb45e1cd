package config

import (
	"errors"
	"fmt"
	"time"
)

const minJWTSecretBytes = 32

// Validate rejects settings that would otherwise only fail on first use.
func (c Config) Validate() error {
	var problems []error
	if len(c.JWT.Secret) < minJWTSecretBytes {
		problems = append(problems, fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretBytes))
	}
	if _, err := time.ParseDuration(c.JWT.AccessTokenDuration); err != nil {
		problems = append(problems, fmt.Errorf("JWT_ACCESS_TOKEN_DURATION: %w", err))
	}
	if _, err := time.LoadLocation(c.Booking.TimeZone); err != nil {
		problems = append(problems, fmt.Errorf("BOOKING_TIMEZONE: %w", err))
	}
	if c.Booking.AvailabilityHorizon < 1 {
		problems = append(problems, errors.New("BOOKING_AVAILABILITY_HORIZON_DAYS must be positive"))
	}
	if c.Booking.MaxWindowDays > 0 && c.Booking.MaxWindowDays < c.Booking.AvailabilityHorizon {
		problems = append(problems, errors.New("BOOKING_MAX_WINDOW_DAYS must not be below the availability horizon"))
	}
	if c.Notify.MaxAttempts < 1 || c.Notify.BatchSize < 1 {
		problems = append(problems, errors.New("NOTIFY_MAX_ATTEMPTS and NOTIFY_BATCH_SIZE must be positive"))
	}
	if len(c.Kafka.Brokers) == 0 {
		problems = append(problems, errors.New("KAFKA_BROKERS must list at least one broker"))
	}
	return errors.Join(problems...)
}
