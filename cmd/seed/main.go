package main

import (
	"context"
	"log"
	"time"

	"crm/internal/config"
	"crm/internal/database"
	"crm/internal/domain"
	"crm/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a minimal org: one admin, one manager and one employee reporting to
// the manager. Safe to re-run, existing usernames are skipped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	admin := seedUser(ctx, users, domain.User{
		Name:     "System Admin",
		Username: "admin",
		Email:    "admin@crm.local",
		Role:     domain.RoleAdmin,
	}, "Admin123!")

	mgr := seedUser(ctx, users, domain.User{
		Name:       "Maria Lopez",
		Username:   "maria",
		Email:      "maria@crm.local",
		Role:       domain.RoleManager,
		Position:   "Sales Manager",
		Department: "Sales",
	}, "Manager123!")

	var mgrID *int64
	if mgr != nil {
		mgrID = &mgr.ID
	}

	seedUser(ctx, users, domain.User{
		Name:       "Bob Carter",
		Username:   "bob",
		Email:      "bob@crm.local",
		Role:       domain.RoleEmployee,
		Position:   "Account Executive",
		Department: "Sales",
		ManagerID:  mgrID,
	}, "Employee123!")

	if admin != nil {
		log.Println("Seed complete")
	}
}

func seedUser(ctx context.Context, users *repository.UserRepository, u domain.User, password string) *domain.User {
	exists, err := users.ExistsByUsername(ctx, u.Username)
	if err != nil {
		log.Fatalf("check %s: %v", u.Username, err)
	}
	if exists {
		existing, err := users.GetByUsername(ctx, u.Username)
		if err != nil {
			log.Fatalf("load %s: %v", u.Username, err)
		}
		log.Printf("user %s already exists, skipping", u.Username)
		return existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password for %s: %v", u.Username, err)
	}

	now := time.Now()
	u.PasswordHash = string(hash)
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := users.Create(ctx, &u); err != nil {
		log.Fatalf("create %s: %v", u.Username, err)
	}
	log.Printf("created %s (%s)", u.Username, u.Role)
	return &u
}
