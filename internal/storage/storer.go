package storage

import (
	"context"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
)

type Reader interface {
	// ListCatalog returns the named catalog with its types ordered by full
	// name, or ErrCatalogNotFound.
	ListCatalog(ctx context.Context, name string) (*catalog.Catalog, error)
}

type Storer interface {
	// SaveCatalog replaces every stored type of the catalog.
	SaveCatalog(ctx context.Context, c *catalog.Catalog) error
}

type Store interface {
	Reader
	Storer
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
	ErrCatalogNotFound   StorerError = "catalog not found"
)

func (e StorerError) Error() string {
	return string(e)
}
