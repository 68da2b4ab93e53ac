package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	strutil "contactcentre/pkg/string"
)

// Server captures every setting the contact-centre service reads at startup.
type Server struct {
	Env      string
	Addr     string
	LogLevel string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// RequestTimeout bounds a single operator request end to end.
	RequestTimeout time.Duration

	CaseService CaseService
	Redis       Redis
	Database    Database
	Kafka       Kafka
	Outbox      Outbox
	Launch      Launch
	Events      Events
	CCS         CCS
	RateLimit   RateLimit
}

// CaseService configures the HTTP client for the downstream case directory.
type CaseService struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// BreakerFailures consecutive outages open the circuit for BreakerCooldown. Zero disables it.
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Redis configures the case cache.
type Redis struct {
	URL string
	TTL time.Duration
	// Write contention retry.
	RetryInitialDelay time.Duration
	RetryMultiplier   float64
	RetryMaxDelay     time.Duration
	RetryMaxAttempts  int
}

type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type Kafka struct {
	Brokers         []string
	Topic           string
	Acks            string
	Retries         int
	DeliveryTimeout time.Duration
}

// Outbox switches event publishing from direct Kafka produce to the transactional outbox.
type Outbox struct {
	Enabled      bool
	PollInterval time.Duration
	BatchSize    int
}

// Launch configures questionnaire launch URLs and token signing.
type Launch struct {
	EQHost       string
	SigningKey   string
	Issuer       string
	TokenTTL     time.Duration
	LanguageCode string
}

type Events struct {
	// Whitelist holds the case event categories operators may see.
	Whitelist []string
}

type CCS struct {
	PostcodesFile string
	Postcodes     []string
}

type RateLimit struct {
	RPS     float64
	Burst   int
	IdleTTL time.Duration
}

const devSigningKey = "dev-launch-key-change-in-production"

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() Server {
	_ = godotenv.Load()

	return Server{
		Env:            getEnv("APP_ENV", "development"),
		Addr:           getEnv("CC_ADDR", ":8171"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ReadTimeout:    getDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:   getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		RequestTimeout: getDuration("HTTP_REQUEST_TIMEOUT", 20*time.Second),
		CaseService: CaseService{
			BaseURL: getEnv("CASE_SERVICE_URL", "http://localhost:8161"),
			APIKey:  getEnv("CASE_SERVICE_API_KEY", ""),
			Timeout: getDuration("CASE_SERVICE_TIMEOUT", 5*time.Second),

			BreakerFailures: getInt("CASE_SERVICE_BREAKER_FAILURES", 5),
			BreakerCooldown: getDuration("CASE_SERVICE_BREAKER_COOLDOWN", 10*time.Second),
		},
		Redis: Redis{
			URL:               getEnv("REDIS_URL", ""),
			TTL:               getDuration("CASE_CACHE_TTL", 7*24*time.Hour),
			RetryInitialDelay: getDuration("CASE_CACHE_RETRY_INITIAL", 100*time.Millisecond),
			RetryMultiplier:   getFloat("CASE_CACHE_RETRY_MULTIPLIER", 2.0),
			RetryMaxDelay:     getDuration("CASE_CACHE_RETRY_MAX", 2*time.Second),
			RetryMaxAttempts:  getInt("CASE_CACHE_RETRY_ATTEMPTS", 5),
		},
		Database: Database{
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Kafka: Kafka{
			Brokers:         splitCSV(getEnv("KAFKA_BROKERS", "")),
			Topic:           getEnv("KAFKA_EVENT_TOPIC", "contact-centre.events"),
			Acks:            getEnv("KAFKA_ACKS", "all"),
			Retries:         getInt("KAFKA_RETRIES", 3),
			DeliveryTimeout: getDuration("KAFKA_DELIVERY_TIMEOUT", 30*time.Second),
		},
		Outbox: Outbox{
			Enabled:      getBool("OUTBOX_ENABLED", false),
			PollInterval: getDuration("OUTBOX_POLL_INTERVAL", 100*time.Millisecond),
			BatchSize:    getInt("OUTBOX_BATCH_SIZE", 100),
		},
		Launch: Launch{
			EQHost:       getEnv("EQ_HOST", "localhost"),
			SigningKey:   getEnv("LAUNCH_SIGNING_KEY", devSigningKey),
			Issuer:       getEnv("LAUNCH_ISSUER", "contact-centre"),
			TokenTTL:     getDuration("LAUNCH_TOKEN_TTL", 5*time.Minute),
			LanguageCode: getEnv("LAUNCH_LANGUAGE", "en"),
		},
		Events: Events{
			Whitelist: splitCSV(getEnv("CASE_EVENT_WHITELIST", "CASE_CREATED,CASE_UPDATED,FULFILMENT_REQUESTED,REFUSAL_RECEIVED,ACTION_CREATED")),
		},
		CCS: CCS{
			PostcodesFile: getEnv("CCS_POSTCODES_FILE", ""),
			Postcodes:     splitCSV(getEnv("CCS_POSTCODES", "")),
		},
		RateLimit: RateLimit{
			RPS:   getFloat("RATE_LIMIT_RPS", 0),
			Burst: getInt("RATE_LIMIT_BURST", 20),

			IdleTTL: getDuration("RATE_LIMIT_IDLE_TTL", 10*time.Minute),
		},
	}
}

// IsProduction reports whether the service runs with production safeguards.
func (s Server) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

// Validate rejects configurations that must not reach production.
func (s Server) Validate() error {
	var errs []error
	if s.IsProduction() && s.Launch.SigningKey == devSigningKey {
		errs = append(errs, errors.New("LAUNCH_SIGNING_KEY must be set in production"))
	}
	if s.CaseService.BaseURL == "" {
		errs = append(errs, errors.New("CASE_SERVICE_URL is required"))
	}
	if s.Outbox.Enabled && s.Database.URL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required when OUTBOX_ENABLED=true"))
	}
	if s.Redis.RetryMaxAttempts < 1 {
		errs = append(errs, errors.New("CASE_CACHE_RETRY_ATTEMPTS must be at least 1"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	return strutil.DedupeAndTrim(strings.Split(v, ","))
}
