package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr               string
	Environment        string
	JWTSigningKey      string
	TokenTTL           time.Duration
	DatabaseURL        string
	CORSAllowedOrigins []string
	CredentialMode     string
	LogLevel           string
}

// Seed holds the optional bootstrap admin created at startup when the store
// is empty.
type Seed struct {
	Name     string
	Email    string
	Password string
}

const defaultTokenTTL = 15 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; real
// environment variables win over file entries.
func FromEnv() Server {
	_ = godotenv.Load()

	addr := os.Getenv("ADMIN_GATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	tokenTTL := defaultTokenTTL
	if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
		if duration, err := time.ParseDuration(ttlStr); err == nil {
			tokenTTL = duration
		}
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	return Server{
		Addr:               addr,
		Environment:        environment,
		JWTSigningKey:      jwtSigningKey,
		TokenTTL:           tokenTTL,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		CORSAllowedOrigins: origins,
		CredentialMode:     os.Getenv("CREDENTIAL_MODE"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
	}
}

// SeedFromEnv reads the optional bootstrap admin. All three variables must be
// set for seeding to happen; Enabled reports whether they are.
func SeedFromEnv() Seed {
	return Seed{
		Name:     os.Getenv("SEED_ADMIN_NAME"),
		Email:    os.Getenv("SEED_ADMIN_EMAIL"),
		Password: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
}

func (s Seed) Enabled() bool {
	return s.Name != "" && s.Email != "" && s.Password != ""
}
