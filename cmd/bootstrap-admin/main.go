// Command bootstrap-admin creates an admin account. Admins cannot be created
// through the HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-veritas/internal/config"
	"github.com/sbilibin2017/gw-veritas/internal/handlers"
	"github.com/sbilibin2017/gw-veritas/internal/logger"
	"github.com/sbilibin2017/gw-veritas/internal/migrations"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/repositories"
	"github.com/sbilibin2017/gw-veritas/internal/services"
	"github.com/sbilibin2017/gw-veritas/internal/tx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const usage = "Usage: bootstrap-admin [-c config.env] <email> <username> <password>"

func main() {
	configPath, args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	ctx := context.Background()
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("PostgreSQL connection error: %v", err)
	}
	defer db.Close()

	if err := migrations.Up(ctx, db.DB); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	admin, err := createAdmin(ctx, db, args[0], args[1], args[2])
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}

	fmt.Printf("Admin created: %s (ID: %d)\n    Email: %s\n", admin.Username, admin.ID, admin.Email)
}

// parseArgs returns the config path and the three positional arguments.
func parseArgs(argv []string) (string, []string, error) {
	fs := flag.NewFlagSet("bootstrap-admin", flag.ContinueOnError)
	c := fs.String("c", "config.env", "Path to configuration file")
	if err := fs.Parse(argv); err != nil {
		return "", nil, err
	}
	if fs.NArg() != 3 {
		return "", nil, errors.New("expected email, username and password")
	}
	return *c, fs.Args(), nil
}

// createAdmin validates the credentials with the registration rules and stores an admin user.
func createAdmin(ctx context.Context, db *sqlx.DB, email, username, password string) (*models.UserDB, error) {
	username, email, err := handlers.ValidateRegistration(username, password, email)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	auth := services.NewAuthService(
		repositories.NewUserReadRepository(db, tx.FromContext),
		repositories.NewUserWriteRepository(db, tx.FromContext),
		nil,
	)
	return auth.CreateAdmin(ctx, username, password, email)
}
