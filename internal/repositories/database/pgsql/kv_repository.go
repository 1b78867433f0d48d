package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/money_rates_app/internal/apperrors"
	portsrepo "github.com/SscSPs/money_rates_app/internal/core/ports/repositories"
)

// Namespaces partitioning the kv_store table.
const (
	NamespaceRates    = "rates"
	NamespaceSettings = "settings"
)

// PgxKeyValueRepository stores string values in the kv_store table under one namespace.
type PgxKeyValueRepository struct {
	BaseRepository
	namespace string
}

// newPgxKeyValueRepository creates a new repository for one namespace of kv_store.
func newPgxKeyValueRepository(pool *pgxpool.Pool, namespace string) portsrepo.KeyValueStore {
	return &PgxKeyValueRepository{
		BaseRepository: BaseRepository{Pool: pool},
		namespace:      namespace,
	}
}

// Ensure implementation matches interface
var _ portsrepo.KeyValueStore = (*PgxKeyValueRepository)(nil)

// Get retrieves the value stored under key.
func (r *PgxKeyValueRepository) Get(ctx context.Context, key string) (string, error) {
	query := `
		SELECT value
		FROM kv_store
		WHERE namespace = $1 AND key = $2;
	`
	var value string
	err := r.Pool.QueryRow(ctx, query, r.namespace, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
		}
		return "", fmt.Errorf("failed to get %s/%s: %w", r.namespace, key, err)
	}
	return value, nil
}

// Set inserts or replaces the value stored under key.
func (r *PgxKeyValueRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, r.namespace, key, value); err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", r.namespace, key, err)
	}
	return nil
}
