package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const catalogTypesTable = "catalog_types"

// Store keeps one row per catalog type with the type itself as a JSONB
// document.
type Store struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{pool: pool, db: pool.GetConn()}
}

func (s *Store) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	rows := make([][]any, len(c.Types))
	for i := range c.Types {
		t := c.Types[i]
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}

		doc, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal type %q: %w", t.FullName, err)
		}
		rows[i] = []any{t.ID, c.Name, t.FullName, doc}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_types WHERE catalog = $1`, c.Name); err != nil {
		return fmt.Errorf("failed to delete catalog %q: %w", c.Name, err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{catalogTypesTable},
		[]string{"id", "catalog", "full_name", "doc"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to insert catalog types: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog %q: %w", c.Name, err)
	}

	slog.Info("Catalog saved to PostgreSQL", "catalog", c.Name, "types", len(rows))
	return nil
}

func (s *Store) ListCatalog(ctx context.Context, name string) (*catalog.Catalog, error) {
	rows, err := s.db.Query(ctx, `
		SELECT doc
		FROM catalog_types
		WHERE catalog = $1
		ORDER BY full_name
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog %q: %w", name, err)
	}
	defer rows.Close()

	c := &catalog.Catalog{Name: name}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan catalog type: %w", err)
		}

		var t catalog.Type
		if err := json.Unmarshal(doc, &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal catalog type: %w", err)
		}
		c.Types = append(c.Types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog %q: %w", name, err)
	}

	if len(c.Types) == 0 {
		return nil, storage.ErrCatalogNotFound
	}
	return c, nil
}

func (s *Store) Close() {
	s.pool.Close()
}
