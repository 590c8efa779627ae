package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds everything the server reads from the environment. main loads a
// local .env first, so the same variables work in dev and in deployment.
type App struct {
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseDSN string `envconfig:"DATABASE_DSN" required:"true"`

	JWTSecret string `envconfig:"JWT_SECRET_KEY" required:"true"`
	// Token and cookie share one lifetime, expressed in days like the
	// COOKIE_EXPIRE convention the frontend already relies on.
	CookieExpireDays int `envconfig:"COOKIE_EXPIRE" default:"7"`

	CloudinaryURL string `envconfig:"CLOUDINARY_URL" required:"true"`

	// Optional; posting extraction answers 503 when unset.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	FrontendOrigin string `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
