package database

import (
	"context"
	"database/sql"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/telecrm/internal/entity"
	"github.com/xavierca1/telecrm/internal/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT NOT NULL,
		call_status TEXT,
		response_status TEXT,
		telecaller_id UUID NOT NULL,
		telecaller_name TEXT NOT NULL,
		last_updated TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS call_records (
		id UUID PRIMARY KEY,
		lead_id UUID NOT NULL,
		customer_name TEXT NOT NULL,
		telecaller_id UUID NOT NULL,
		telecaller_name TEXT NOT NULL,
		call_status TEXT NOT NULL,
		response_status TEXT NOT NULL,
		call_date_time TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_telecaller ON leads (telecaller_id)`,
	`CREATE INDEX IF NOT EXISTS idx_call_records_lead ON call_records (lead_id)`,
	`CREATE INDEX IF NOT EXISTS idx_call_records_telecaller ON call_records (telecaller_id)`,
	`CREATE INDEX IF NOT EXISTS idx_call_records_date ON call_records (call_date_time)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaultAdmin creates the single admin account if no admin exists
// yet. The admin only ever comes from config; registration cannot
// produce one.
func SeedDefaultAdmin(ctx context.Context, users *UserRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@telecrm.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	count, err := users.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		logger.Error("failed checking for admin user", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed hashing default admin password", zap.Error(err))
		return
	}

	admin, err := entity.NewUser("Admin", email, string(hash), entity.RoleAdmin)
	if err != nil {
		logger.Error("failed building default admin", zap.Error(err))
		return
	}

	if err := users.Create(ctx, admin); err != nil {
		logger.Error("failed creating default admin", zap.Error(err))
		return
	}

	logger.Info("created default admin user", zap.String("email", email))
}
