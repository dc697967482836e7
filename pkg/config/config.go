// Package config defines the environment-sourced application configuration.
package config

import (
	"time"
)

// Server holds the inbound HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"6000"`
}

// Log configures the slog handler.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[coinchat]"`
}

// Gateway points at the external trading/wallet gateway. The per-call
// timeout applies to every outbound request.
type Gateway struct {
	Base        string        `envconfig:"BASE" default:"http://localhost:5102"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// App is the root configuration. Caller origins are the two parties allowed
// to reach the chat endpoint cross-origin: the web frontend and the gateway.
type App struct {
	Env            string   `envconfig:"APP_ENV" default:"development"`
	Server         *Server  `envconfig:"SERVER"`
	Log            *Log     `envconfig:"LOG"`
	Gateway        *Gateway `envconfig:"GATEWAY"`
	FrontendOrigin string   `envconfig:"FRONTEND_ORIGIN" default:"http://localhost:5294"`
	GatewayOrigin  string   `envconfig:"GATEWAY_ORIGIN" default:"http://localhost:5102"`
}

// AllowedOrigins returns the caller origins permitted by CORS.
func (a *App) AllowedOrigins() []string {
	return []string{a.FrontendOrigin, a.GatewayOrigin}
}
