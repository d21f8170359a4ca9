// Package main prints account tokens for local development. Tokens are
// signed with the dev key unless -key or JWT_SIGNING_KEY says otherwise.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	jwttoken "recordkeeper/internal/jwt_token"
	id "recordkeeper/pkg/domain"
)

const (
	// matches the JWT_SIGNING_KEY default in config
	devSigningKey = "dev-secret-key-change-in-production"
	defaultIssuer = "recordkeeper"
	defaultTTL    = 15 * time.Minute
)

type tokenOutput struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	JTI       string `json:"jti"`
	ExpiresIn string `json:"expires_in"`
}

func main() {
	accountFlag := flag.String("account-id", "", "Account ID (UUID). Generated if empty.")
	keyFlag := flag.String("key", envOr("JWT_SIGNING_KEY", devSigningKey), "HS256 signing key")
	issuerFlag := flag.String("issuer", envOr("JWT_ISSUER", defaultIssuer), "Token issuer")
	ttlFlag := flag.Duration("ttl", defaultTTL, "Token time-to-live")
	jsonFlag := flag.Bool("json", false, "Output as JSON")
	flag.Parse()

	acct := id.NewAccountID()
	if *accountFlag != "" {
		parsed, err := id.ParseAccountID(*accountFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid account-id: %v\n", err)
			os.Exit(1)
		}
		acct = parsed
	}

	svc := jwttoken.NewJWTService(*keyFlag, *issuerFlag, *ttlFlag)
	token, jti, err := svc.GenerateAccountToken(context.Background(), acct)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tokenOutput{
			Token:     token,
			AccountID: acct.String(),
			JTI:       jti,
			ExpiresIn: ttlFlag.String(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Account Token (JWT)")
	fmt.Println("===================")
	fmt.Printf("Account ID:  %s\n", acct)
	fmt.Printf("Expires In:  %s\n", *ttlFlag)
	fmt.Printf("JTI:         %s\n", jti)
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println(`  curl -H "Authorization: Bearer <token>" http://localhost:8080/users/me`)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
