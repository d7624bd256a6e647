package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config carries everything the web tier needs: where it listens, where the
// platform API lives, the session cookie secret, and the Google OAuth
// client. All domain data stays behind PlatformURL; there is no database.
type Config struct {
	ServerPort      string `env:"SERVER_PORT" env-default:"3000"`
	PlatformURL     string `env:"PLATFORM_API_URL" env-default:"http://localhost:4000/api"`
	SessionSecret   string `env:"SESSION_SECRET" env-default:"secret"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" env-default:"72"`
	RequestTimeout  int    `env:"REQUEST_TIMEOUT_SECONDS" env-default:"15"`
	AllowOrigins    string `env:"ALLOW_ORIGINS" env-default:"http://localhost:5173,http://localhost:3000"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GoogleEnabled reports whether federated sign-in is configured. When it is
// not, the Google routes answer a clear error instead of failing at boot.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}
