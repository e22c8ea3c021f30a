package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store keeps preferences in the preferences and preference_set_members
// tables created by migrations/000001.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM preferences WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}
	return nil
}

func (s *Store) Members(ctx context.Context, set string) ([]string, error) {
	members := []string{}
	err := s.db.SelectContext(ctx, &members,
		`SELECT member FROM preference_set_members WHERE set_name = $1 ORDER BY member`, set)
	if err != nil {
		return nil, fmt.Errorf("failed to list set %s: %w", set, err)
	}
	return members, nil
}

func (s *Store) Replace(ctx context.Context, set string, members []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM preference_set_members WHERE set_name = $1`, set); err != nil {
		return fmt.Errorf("failed to clear set %s: %w", set, err)
	}
	for _, m := range members {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO preference_set_members (set_name, member) VALUES ($1, $2) ON CONFLICT DO NOTHING`, set, m)
		if err != nil {
			return fmt.Errorf("failed to add %s to set %s: %w", m, set, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit set %s: %w", set, err)
	}
	return nil
}
