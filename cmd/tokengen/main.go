// Package main provides a CLI tool for generating test bearer tokens for
// the admin API. These tokens use the dev signing key and will NOT work
// against a production deployment.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"admingate/internal/jwttoken"
)

const (
	// Dev signing key - matches config.go when JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"

	defaultIssuer   = "admingate"
	defaultTokenTTL = 15 * time.Minute
)

type tokenOutput struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expires_in"`
	Usage     string `json:"usage"`
}

func main() {
	email := flag.String("email", "admin@example.com", "Email claim for the token")
	ttl := flag.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	signingKey := flag.String("signing-key", "", "Override the signing key (defaults to the dev key)")
	asJSON := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	key := *signingKey
	if key == "" {
		key = devSigningKey
		if env := os.Getenv("JWT_SIGNING_KEY"); env != "" {
			key = env
		}
	}

	tokens := jwttoken.NewService(key, defaultIssuer, *ttl)
	token, err := tokens.Issue(*email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		out := tokenOutput{
			Token:     token,
			Email:     *email,
			ExpiresIn: ttl.String(),
			Usage:     `curl -H "Authorization: Bearer <token>" http://localhost:8080/admin/getadmindetails`,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
		return
	}

	fmt.Println(token)
}
