package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	JWTSecret       string
	StripeSecretKey string
	StripeBaseURL   string
	AllowedOrigins  []string
	IsProd          bool
}

// Load reads configuration from the environment, loading .env first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getenv("PORT", "5000"),
		MongoURI:        os.Getenv("MONGOURI"),
		DBName:          getenv("MONGODB_NAME", "pawhopedb"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeBaseURL:   getenv("STRIPE_BASE_URL", "https://api.stripe.com"),
		IsProd:          os.Getenv("PRODUCTION") == "true",
	}

	origins := getenv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
