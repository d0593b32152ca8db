package in_mem

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage"
	"github.com/google/uuid"
)

type Store struct {
	storageLock sync.RWMutex
	storage     map[string][]catalog.Type
}

func NewStore() *Store {
	return &Store{
		storage: make(map[string][]catalog.Type),
	}
}

func (s *Store) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	types := cloneTypes(c.Types)
	for i := range types {
		if types[i].ID == uuid.Nil {
			types[i].ID = uuid.New()
		}
	}
	slices.SortFunc(types, func(a, b catalog.Type) int {
		return strings.Compare(a.FullName, b.FullName)
	})

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	if len(types) == 0 {
		// nothing is listed for a catalog without types
		delete(s.storage, c.Name)
		slog.Info("Empty catalog removed from in-memory storage", "catalog", c.Name)
		return nil
	}
	s.storage[c.Name] = types

	slog.Info("Catalog saved to in-memory storage", "catalog", c.Name, "types", len(types))
	return nil
}

func (s *Store) ListCatalog(ctx context.Context, name string) (*catalog.Catalog, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	types, ok := s.storage[name]
	if !ok {
		return nil, storage.ErrCatalogNotFound
	}
	return &catalog.Catalog{Name: name, Types: cloneTypes(types)}, nil
}

func (s *Store) Close() {}

func cloneTypes(types []catalog.Type) []catalog.Type {
	out := make([]catalog.Type, len(types))
	for i, t := range types {
		t.BaseTypes = slices.Clone(t.BaseTypes)
		t.Members = slices.Clone(t.Members)
		out[i] = t
	}
	return out
}
