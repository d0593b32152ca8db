package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/rule-hunter/internal/storage"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage/es"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage/pg"
	"github.com/DjordjeVuckovic/rule-hunter/pkg/server"
)

// NewStore creates the catalog store selected by cfg together with a health
// checker for its backend.
func NewStore(ctx context.Context, cfg *StorageConfig) (storage.Store, server.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewStore(pool), pg.NewHealthChecker(pool), nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		s, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case storage.InMem:
		return in_mem.NewStore(), server.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
