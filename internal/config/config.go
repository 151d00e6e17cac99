package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/sinkhole_navigator/internal/models"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// Route planning
	WalkingSpeedMetersPerMinute float64       `env:"WALKING_SPEED_M_PER_MIN" envDefault:"50"`
	ProximityMode               string        `env:"ROUTE_PROXIMITY_MODE" envDefault:"segment"`
	HazardSearchMarginMeters    float64       `env:"HAZARD_SEARCH_MARGIN_METERS" envDefault:"500"`
	LocationCacheTTL            time.Duration `env:"LOCATION_CACHE_TTL" envDefault:"60s"`

	// ServiceArea - границы зоны обслуживания, nil - без ограничений
	ServiceArea *models.Bounds `env:"SERVICE_AREA_BOUNDS"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	// API Keys for authentication: key -> caller
	APIKeys map[string]string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:                 os.Getenv("DATABASE_URL"),
		HTTPPort:                    getEnv("HTTP_PORT", "8080"),
		LogLevel:                    getEnv("LOG_LEVEL", "info"),
		RedisAddr:                   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                   os.Getenv("REDIS_PASSWORD"),
		RedisDB:                     getEnvAsInt("REDIS_DB", 0),
		WebhookURL:                  os.Getenv("WEBHOOK_URL"),
		WebhookSecret:               os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:              getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:           getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:            getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes:      getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		WalkingSpeedMetersPerMinute: getEnvAsFloat("WALKING_SPEED_M_PER_MIN", 50),
		ProximityMode:               getEnv("ROUTE_PROXIMITY_MODE", "segment"),
		HazardSearchMarginMeters:    getEnvAsFloat("HAZARD_SEARCH_MARGIN_METERS", 500),
		LocationCacheTTL:            getEnvAsDuration("LOCATION_CACHE_TTL", time.Minute),
		RateLimitRPS:                getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:              getEnvAsInt("RATE_LIMIT_BURST", 10),
	}

	// Загрузка API ключей
	apiKeys, err := ParseAPIKeys(os.Getenv("API_KEYS"))
	if err != nil {
		return nil, err
	}
	cfg.APIKeys = apiKeys

	if bounds := os.Getenv("SERVICE_AREA_BOUNDS"); bounds != "" {
		area, err := ParseBounds(bounds)
		if err != nil {
			return nil, err
		}
		cfg.ServiceArea = area
	}

	switch cfg.ProximityMode {
	case "segment", "endpoints":
	default:
		return nil, fmt.Errorf("ROUTE_PROXIMITY_MODE must be segment or endpoints, got %q", cfg.ProximityMode)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// ParseAPIKeys разбирает список вида "caller:key,caller2:key2".
// Ключ без имени вызывающего получает имя "client-<номер>".
func ParseAPIKeys(raw string) (map[string]string, error) {
	keys := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return keys, nil
	}

	for i, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		caller, key, found := strings.Cut(entry, ":")
		if !found {
			caller, key = fmt.Sprintf("client-%d", i+1), entry
		}
		caller, key = strings.TrimSpace(caller), strings.TrimSpace(key)
		if caller == "" || key == "" {
			return nil, fmt.Errorf("invalid API_KEYS entry %q", entry)
		}
		if _, dup := keys[key]; dup {
			return nil, fmt.Errorf("duplicate API key for caller %q", caller)
		}
		keys[key] = caller
	}
	return keys, nil
}

// ParseBounds разбирает границы вида "minLat,minLng,maxLat,maxLng"
func ParseBounds(raw string) (*models.Bounds, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("SERVICE_AREA_BOUNDS must have 4 values, got %d", len(parts))
	}

	values := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_AREA_BOUNDS value %q: %w", p, err)
		}
		values[i] = v
	}

	b := &models.Bounds{
		MinLatitude:  values[0],
		MinLongitude: values[1],
		MaxLatitude:  values[2],
		MaxLongitude: values[3],
	}
	if b.MinLatitude > b.MaxLatitude || b.MinLongitude > b.MaxLongitude {
		return nil, fmt.Errorf("SERVICE_AREA_BOUNDS min values must not exceed max values")
	}
	return b, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
