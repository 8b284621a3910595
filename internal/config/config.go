package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Booking rules. The closing hour is exclusive: a 18:00 start is outside
	// an 8-18 window.
	OpeningHour int `env:"OPENING_HOUR" envDefault:"8"`
	ClosingHour int `env:"CLOSING_HOUR" envDefault:"18"`
	SlotMinutes int `env:"SLOT_MINUTES" envDefault:"60"`

	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, after loading an optional
// .env file for local development.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.OpeningHour < 0 || c.OpeningHour > 23 {
		return fmt.Errorf("OPENING_HOUR %d out of range", c.OpeningHour)
	}
	if c.ClosingHour < 1 || c.ClosingHour > 24 {
		return fmt.Errorf("CLOSING_HOUR %d out of range", c.ClosingHour)
	}
	if c.ClosingHour <= c.OpeningHour {
		return fmt.Errorf("CLOSING_HOUR %d must be after OPENING_HOUR %d", c.ClosingHour, c.OpeningHour)
	}
	if c.SlotMinutes <= 0 || c.SlotMinutes > 24*60 {
		return fmt.Errorf("SLOT_MINUTES %d out of range", c.SlotMinutes)
	}
	return nil
}
