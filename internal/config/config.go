// README: Config loader with env defaults for HTTP, DB, Redis, maps, AI, and pricing.
package config

import (
	"os"
	"strconv"
	"strings"
)

type PricingConfig struct {
	BaseFare          float64
	PerKmRate         float64
	MinFare           float64
	RoundTripDiscount float64
	EstimateVariance  float64
	Currency          string
}

type Config struct {
	HTTP struct {
		Addr         string
		AllowOrigins []string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
		Region string
	}
	AI struct {
		GeminiKey     string
		DailyMessages int
	}
	WhatsApp struct {
		Number string
	}
	Booking struct {
		SessionTTLMinutes int
		Timezone          string
	}
	Pricing PricingConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ATX_HTTP_ADDR", ":8080")
	cfg.HTTP.AllowOrigins = splitList(envOrDefault("ATX_ALLOW_ORIGINS", "https://andrewstaxilb.com"))
	cfg.DB.DSN = envOrDefault("ATX_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("ATX_REDIS_ADDR", "localhost:6379")
	cfg.Maps.APIKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	cfg.Maps.Region = envOrDefault("ATX_MAPS_REGION", "lb")
	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	cfg.AI.DailyMessages = envOrDefaultInt("ATX_CHAT_DAILY_MESSAGES", 30)
	cfg.WhatsApp.Number = envOrDefault("ATX_WHATSAPP_NUMBER", "96176301019")
	cfg.Booking.SessionTTLMinutes = envOrDefaultInt("ATX_SESSION_TTL_MIN", 30)
	cfg.Booking.Timezone = envOrDefault("ATX_TIMEZONE", "Asia/Beirut")
	cfg.Pricing.BaseFare = envOrDefaultFloat("ATX_BASE_FARE", 2.00)
	cfg.Pricing.PerKmRate = envOrDefaultFloat("ATX_PER_KM_RATE", 1.10)
	cfg.Pricing.MinFare = envOrDefaultFloat("ATX_MIN_FARE", 6.00)
	cfg.Pricing.RoundTripDiscount = envOrDefaultFloat("ATX_ROUND_TRIP_DISCOUNT", 0.00)
	cfg.Pricing.EstimateVariance = envOrDefaultFloat("ATX_ESTIMATE_VARIANCE", 0.12)
	cfg.Pricing.Currency = envOrDefault("ATX_CURRENCY", "USD")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
