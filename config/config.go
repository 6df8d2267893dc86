package config

import (
	"os"
	"strconv"
	"time"
)

// Config is read once at startup from the environment.
type Config struct {
	Port      string
	GinMode   string
	AppEnv    string
	PublicURL string

	DBPath string

	// Empty RedisAddr keeps carts in process memory.
	RedisAddr   string
	CartTTL     time.Duration
	CartSecret  []byte
	KafkaBroker string
	KafkaTopic  string

	CheckoutDelay    time.Duration
	ReservationDelay time.Duration
	EnforceCalendar  bool
}

func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", ""),
		AppEnv:           getEnv("APP_ENV", "local"),
		PublicURL:        getEnv("PUBLIC_URL", "http://localhost:8080"),
		DBPath:           getEnv("DB_PATH", "bistro.db"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		CartTTL:          getDuration("CART_TTL", 7*24*time.Hour),
		CartSecret:       []byte(getEnv("CART_SECRET", "bistro_cart_secret_change_me")),
		KafkaBroker:      getEnv("KAFKA_BROKER", ""),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "bistro.events"),
		CheckoutDelay:    getDuration("CHECKOUT_DELAY", 2*time.Second),
		ReservationDelay: getDuration("RESERVATION_DELAY", 1500*time.Millisecond),
		EnforceCalendar:  getBool("ENFORCE_CALENDAR", true),
	}
}

// IsProduction reports whether logs should be machine-readable.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
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

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}
