package uploads

import (
	"github.com/dmitrymomot/uploads/core/server"
	"github.com/dmitrymomot/uploads/core/storage"
	"github.com/dmitrymomot/uploads/core/upload"
)

type Config struct {
	Server  server.Config
	Storage storage.Config
	Upload  upload.Config

	AppName        string `env:"APP_NAME" envDefault:"uploads"`
	Env            string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}
