package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	// CheckoutURL is the external checkout-session collaborator endpoint.
	CheckoutURL     string
	CheckoutTimeout time.Duration

	JWTSecret string

	// CORSOrigins is comma-separated in the environment; empty keeps the
	// local development defaults.
	CORSOrigins []string
}

func LoadEnv() Env {
	// Optional .env file for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	checkoutTimeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("CHECKOUT_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			checkoutTimeout = d
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "local-dev-secret-change-me"
	}

	var corsOrigins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}

	return Env{
		AppAddr:         appAddr,
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		DatabaseDSN:     strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		RedisAddr:       strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CheckoutURL:     strings.TrimSpace(os.Getenv("CHECKOUT_URL")),
		CheckoutTimeout: checkoutTimeout,
		JWTSecret:       jwtSecret,
		CORSOrigins:     corsOrigins,
	}
}
