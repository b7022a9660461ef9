// Package config holds the application configuration, populated from
// environment variables via envconfig with optional .env file support.
package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET_KEY" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt Jwt `envconfig:"JWT"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Stripe configures the checkout API client. ApiUrl is overridable so
// tests and local mocks can point the client at a fake server.
type Stripe struct {
	ApiKey        string        `envconfig:"API_KEY"`
	ApiUrl        string        `envconfig:"API_URL" default:"https://api.stripe.com"`
	SigningSecret string        `envconfig:"SIGNING_SECRET"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	SuccessPath   string        `envconfig:"SUCCESS_PATH" default:"/checkout/success"`
	CancelPath    string        `envconfig:"CANCEL_PATH" default:"/checkout/cancel"`
}

type PaymentProviders struct {
	Stripe Stripe `envconfig:"STRIPE"`
}

type App struct {
	Env              string           `envconfig:"APP_ENV" default:"development"`
	Scheme           string           `envconfig:"APP_SCHEME" default:"https"`
	Host             string           `envconfig:"APP_HOST" default:"localhost"`
	Port             int              `envconfig:"APP_PORT" default:"3000"`
	BaseURL          string           `envconfig:"APP_BASE_URL" default:"http://localhost:3000"`
	DB               DB               `envconfig:"DATABASE"`
	Auth             Auth             `envconfig:"AUTH"`
	RateLimit        RateLimit        `envconfig:"RATE_LIMIT"`
	PaymentProviders PaymentProviders `envconfig:"PAYMENT"`
}
