package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// KVRepository stores string values under string keys in the kv_items table.
type KVRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewKVRepo(db *dbpg.DB) *KVRepository {
	return &KVRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *KVRepository) GetItem(ctx context.Context, key string) (string, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT value FROM kv_items WHERE key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrItemNotFound
		}
		return "", fmt.Errorf("get item: %w", err)
	}

	var value string
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrItemNotFound
		}
		return "", fmt.Errorf("scan item: %w", err)
	}

	return value, nil
}

func (r *KVRepository) SetItem(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_items (key, value, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, key, value); err != nil {
		return fmt.Errorf("set item: %w", err)
	}

	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (r *KVRepository) RemoveItem(ctx context.Context, key string) error {
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM kv_items WHERE key = $1`, key); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}

	return nil
}
