// Command seed provisions the bootstrap user. It is meant to run once at
// deployment time and is idempotent: an existing user is left untouched.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"jobtracker/internal/auth"
	"jobtracker/internal/config"
	"jobtracker/internal/database"
)

func main() {
	var (
		username = flag.String("username", "admin", "bootstrap username")
		email    = flag.String("email", "admin@example.com", "bootstrap email")
	)
	flag.Parse()

	u := strings.TrimSpace(*username)
	if u == "" {
		log.Fatal("username must not be empty")
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Fatal("SEED_PASSWORD is not set")
	}

	cfg := config.MustLoad()

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	created, err := database.SeedUser(db, u, *email, hashed)
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	if created {
		fmt.Printf("created bootstrap user %q\n", u)
	} else {
		fmt.Printf("user %q already exists, nothing to do\n", u)
	}
}
