package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, rates, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Booking BookingConfig
	Pricing PricingConfig
	ICal    ICalConfig
	Kafka   KafkaConfig
	Notify  NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"8h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type BookingConfig struct {
	TimeZone            string        `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
	IdempotencyTTL      time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
	AvailabilityHorizon int           `envconfig:"BOOKING_AVAILABILITY_HORIZON_DAYS" default:"365"`
	MaxWindowDays       int           `envconfig:"BOOKING_MAX_WINDOW_DAYS" default:"730"`
}

// Rates are decimal fractions ("0.12" is 12%).
type PricingConfig struct {
	ServiceFeeRate  string `envconfig:"PRICING_SERVICE_FEE_RATE" default:"0.12"`
	TaxRate         string `envconfig:"PRICING_TAX_RATE" default:"0.15"`
	DefaultCurrency string `envconfig:"PRICING_DEFAULT_CURRENCY" default:"USD"`
}

type ICalConfig struct {
	FetchTimeout time.Duration `envconfig:"ICAL_FETCH_TIMEOUT" default:"10s"`
	MaxBodyBytes int64         `envconfig:"ICAL_MAX_BODY_BYTES" default:"2097152"`
	ProductID    string        `envconfig:"ICAL_PRODUCT_ID" default:"-//staybook//Availability Calendar//EN"`
	UIDDomain    string        `envconfig:"ICAL_UID_DOMAIN" default:"staybook.local"`
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	RequiredAcks int           `envconfig:"KAFKA_REQUIRED_ACKS" default:"-1"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"10s"`
}

type NotifyConfig struct {
	PollInterval time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"5s"`
	BatchSize    int32         `envconfig:"NOTIFY_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"8"`
	RetryBackoff time.Duration `envconfig:"NOTIFY_RETRY_BACKOFF" default:"30s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-unit-tests-only",
			AccessTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Booking: BookingConfig{
			TimeZone:            "UTC",
			IdempotencyTTL:      time.Hour,
			AvailabilityHorizon: 365,
			MaxWindowDays:       730,
		},
		Pricing: PricingConfig{
			ServiceFeeRate:  "0.12",
			TaxRate:         "0.15",
			DefaultCurrency: "USD",
		},
		ICal: ICalConfig{
			FetchTimeout: 2 * time.Second,
			MaxBodyBytes: 1 << 20,
			ProductID:    "-//staybook//Availability Calendar//EN",
			UIDDomain:    "staybook.test",
		},
		Kafka: KafkaConfig{
			Brokers:      []string{"localhost:9092"},
			RequiredAcks: -1,
			WriteTimeout: time.Second,
		},
		Notify: NotifyConfig{
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
			MaxAttempts:  3,
			RetryBackoff: time.Second,
		},
	}
}
