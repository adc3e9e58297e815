package shared

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config is the process-wide configuration surface: one backend base URL,
// one shared secret for authenticated booking lookups, one request timeout.
// Nothing here is per-call.
type Config struct {
	AppEnv         string        `envconfig:"APP_ENV" default:"prod"`
	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":5055"`
	MetricsAddr    string        `envconfig:"METRICS_ADDR" default:""`
	BackendBase    string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:3000/api"`
	BotSecret      string        `envconfig:"BOT_SECRET" default:"greenstay-ai"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
	BackendRPS     int           `envconfig:"BACKEND_RPS" default:"5"`
}

// Load reads configuration from the environment, with a local .env file as
// fallback when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	if c.BotSecret == "" {
		log.Warn().Msg("BOT_SECRET is empty; booking lookups will fail backend auth")
	}
	return c, nil
}
