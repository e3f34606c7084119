package calendarmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating calendar_events and event_participants tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS calendar_events (
					id BIGSERIAL PRIMARY KEY,
					title VARCHAR(200) NOT NULL,
					description TEXT,
					event_type VARCHAR(16) NOT NULL CHECK (event_type IN ('lesson', 'event')),
					status VARCHAR(16) NOT NULL DEFAULT 'pending'
						CHECK (status IN ('pending', 'approved', 'rejected', 'cancelled')),
					room_id BIGINT REFERENCES rooms(id),
					club_id BIGINT REFERENCES clubs(id),
					starts_at TIMESTAMPTZ NOT NULL,
					ends_at TIMESTAMPTZ,
					rrule TEXT,
					duration_minutes INTEGER,
					timezone VARCHAR(64),
					created_by BIGINT NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					approved_by BIGINT REFERENCES users(id),
					approved_at TIMESTAMPTZ
				);
				CREATE INDEX IF NOT EXISTS idx_calendar_events_starts_at ON calendar_events (starts_at DESC);
				CREATE INDEX IF NOT EXISTS idx_calendar_events_club_id ON calendar_events (club_id);
				CREATE INDEX IF NOT EXISTS idx_calendar_events_created_by ON calendar_events (created_by);
			`); err != nil {
				return fmt.Errorf("failed to create calendar_events table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS event_participants (
					event_id BIGINT NOT NULL REFERENCES calendar_events(id),
					user_id BIGINT NOT NULL REFERENCES users(id),
					PRIMARY KEY (event_id, user_id)
				);
				CREATE INDEX IF NOT EXISTS idx_event_participants_user_id ON event_participants (user_id);
			`); err != nil {
				return fmt.Errorf("failed to create event_participants table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping calendar tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS event_participants;`); err != nil {
				return fmt.Errorf("failed to drop event_participants table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS calendar_events;`); err != nil {
				return fmt.Errorf("failed to drop calendar_events table: %w", err)
			}
			return nil
		})
	})
}
