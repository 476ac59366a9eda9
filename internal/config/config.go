package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port          string        `envconfig:"PORT" default:"8080"`
	DBDSN         string        `envconfig:"DB_DSN" default:"minimalstore.db"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	SiteURL       string        `envconfig:"SITE_URL" default:"https://minimal-store-demo.vercel.app"`
	ZipAPIURL     string        `envconfig:"ZIP_API_URL" default:"https://api.zippopotam.us"`
	CheckoutDelay time.Duration `envconfig:"CHECKOUT_DELAY" default:"1500ms"`
	MediaDir      string        `envconfig:"MEDIA_DIR" default:"./web/media"`
}

func Load() (Config, error) {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
