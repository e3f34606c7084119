package clubmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating clubs and club_members tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS clubs (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL UNIQUE,
					owner_user_id BIGINT REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create clubs table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS club_members (
					club_id BIGINT NOT NULL REFERENCES clubs(id),
					user_id BIGINT NOT NULL REFERENCES users(id),
					role VARCHAR(32) NOT NULL DEFAULT 'member'
						CHECK (role IN ('member', 'leader')),
					PRIMARY KEY (club_id, user_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create club_members table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_club_members_user_id ON club_members(user_id);
				CREATE INDEX IF NOT EXISTS idx_clubs_name_lower ON clubs(lower(name));
			`); err != nil {
				return fmt.Errorf("failed to create club indexes: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping club_members and clubs tables...")

		if _, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS club_members;
			DROP TABLE IF EXISTS clubs;
		`); err != nil {
			return fmt.Errorf("failed to drop club tables: %w", err)
		}
		return nil
	})
}
