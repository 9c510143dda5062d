// Command createadmin seeds the first admin account so the API has someone
// able to manage users. Run it once against a fresh database.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/rma-service/internal/auth"
	"github.com/spec-kit/rma-service/internal/config"
	"github.com/spec-kit/rma-service/internal/domain"
	"github.com/spec-kit/rma-service/internal/observability"
	"github.com/spec-kit/rma-service/internal/persistence"
	"github.com/spec-kit/rma-service/internal/repository"
	apperrors "github.com/spec-kit/rma-service/pkg/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Postgres.DSN == "" {
		log.Fatal("POSTGRES_DSN must be set")
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	reader := bufio.NewReader(os.Stdin)
	username := prompt(reader, "Username")
	email := prompt(reader, "Email")
	firstName := prompt(reader, "First name")
	lastName := prompt(reader, "Last name")
	password := prompt(reader, "Password")

	hash, err := auth.HashPassword(password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	user := &domain.User{
		PublicID:     uuid.NewString(),
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	users := repository.NewUserRepository(pg.PoolHandle())
	if err := users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			logger.Fatal("a user with that username or email already exists")
		}
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	fmt.Printf("admin %q created with public id %s\n", user.Username, user.PublicID)
}

func prompt(reader *bufio.Reader, label string) string {
	for {
		fmt.Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("failed to read input: %v", err)
		}
		if value := strings.TrimSpace(line); value != "" {
			return value
		}
		fmt.Println("value must not be empty")
	}
}
