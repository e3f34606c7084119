package usermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating users table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				tg_id VARCHAR(64) NOT NULL UNIQUE,
				email VARCHAR(255) UNIQUE,
				username VARCHAR(64),
				full_name VARCHAR(128),
				role VARCHAR(16) NOT NULL DEFAULT 'student'
					CHECK (role IN ('student', 'club_leader', 'admin')),
				bot_intro_seen BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users (lower(email));
		`)
		if err != nil {
			return fmt.Errorf("failed to create users table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping users table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS users;`); err != nil {
			return fmt.Errorf("failed to drop users table: %w", err)
		}
		return nil
	})
}
