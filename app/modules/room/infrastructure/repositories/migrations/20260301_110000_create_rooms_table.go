package roommigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rooms table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS rooms (
				id BIGSERIAL PRIMARY KEY,
				code VARCHAR(64) NOT NULL UNIQUE,
				building VARCHAR(64),
				floor VARCHAR(32),
				room_type VARCHAR(64),
				capacity INTEGER,
				is_active BOOLEAN NOT NULL DEFAULT TRUE
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create rooms table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping rooms table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS rooms;`); err != nil {
			return fmt.Errorf("failed to drop rooms table: %w", err)
		}
		return nil
	})
}
