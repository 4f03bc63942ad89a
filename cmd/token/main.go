// Command token issues a bearer token for the REST API.
//
// Usage:
//
//	token --user=channel-owner
//
// Requires AUTH_JWT_SECRET to be configured.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Jeetch8/softfix-helper/internal/auth"
	"github.com/Jeetch8/softfix-helper/internal/config"
)

func main() {
	user := flag.String("user", "", "user id to embed as the token subject")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<user id>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		log.Fatal("auth.jwt_secret is not set; the API runs without tokens")
	}

	tm := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := tm.Generate(*user)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
