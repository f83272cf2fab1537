// Command promote changes a user's role by email address. It is used to
// bootstrap the first admin account.
//
// Usage:
//
//	promote --email=officer@example.com [--role=admin|farmer]
//
// Requires the DATABASE_DSN environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	userrepo "github.com/krishisathi/backend/internal/adapter/postgres/user"
	"github.com/krishisathi/backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to change")
	role := flag.String("role", string(domain.UserRoleAdmin), "target role: admin or farmer")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|farmer]")
		os.Exit(1)
	}
	target := domain.UserRole(*role)
	if !target.IsValid() {
		log.Fatalf("unknown role %q", *role)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	u, err := userrepo.New(pool).SetRoleByEmail(ctx, domain.NormalizeEmail(*email), target)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q (%s) is now %s.\n", u.Email, u.ID, u.Role)
}
