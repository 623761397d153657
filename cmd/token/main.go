// Command token prints a bearer token for a workshop, signed with JWT_SECRET.
//
//	go run ./cmd/token -workshop ws-1 -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"motomind/internal/adapter/http/middleware"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	workshop := flag.String("workshop", "", "workshop ID (token subject)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime, 0 for no expiry")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if *workshop == "" || secret == "" {
		fmt.Fprintln(os.Stderr, "usage: JWT_SECRET=... token -workshop <id> [-ttl 24h]")
		os.Exit(2)
	}

	tok, err := middleware.NewJWTManager(secret, *ttl).Generate(*workshop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
