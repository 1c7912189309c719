package app

import (
	"github.com/matiboux/totp-online/app/site"
	"github.com/matiboux/totp-online/core/server"
)

// Config is the process configuration read from the environment.
type Config struct {
	Site   site.Config
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"totp-online"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
