package in_mem

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	c := &catalog.Catalog{
		Name: "app",
		Types: []catalog.Type{
			{FullName: "App.Zeta", Members: []catalog.Member{{Name: "Run", Kind: catalog.Method}}},
			{FullName: "App.Alpha", BaseTypes: []string{"App.Zeta"}},
		},
	}
	require.NoError(t, s.SaveCatalog(ctx, c))

	got, err := s.ListCatalog(ctx, "app")
	require.NoError(t, err)
	require.Len(t, got.Types, 2)
	assert.Equal(t, "App.Alpha", got.Types[0].FullName)
	assert.Equal(t, "App.Zeta", got.Types[1].FullName)
	assert.NotEqual(t, uuid.Nil, got.Types[0].ID)

	// stored data is isolated from callers
	got.Types[1].Members[0].Name = "Changed"
	c.Types[0].Members[0].Name = "Changed"
	again, err := s.ListCatalog(ctx, "app")
	require.NoError(t, err)
	assert.Equal(t, "Run", again.Types[1].Members[0].Name)
}

func TestStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.SaveCatalog(ctx, &catalog.Catalog{Name: "app", Types: []catalog.Type{{FullName: "A"}, {FullName: "B"}}}))
	require.NoError(t, s.SaveCatalog(ctx, &catalog.Catalog{Name: "app", Types: []catalog.Type{{FullName: "C"}}}))

	got, err := s.ListCatalog(ctx, "app")
	require.NoError(t, err)
	require.Len(t, got.Types, 1)
	assert.Equal(t, "C", got.Types[0].FullName)
}

func TestStore_NotFound(t *testing.T) {
	_, err := NewStore().ListCatalog(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrCatalogNotFound)
}

func TestStore_EmptyCatalogNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	empty, err := catalog.Parse([]byte("name: empty\n"))
	require.NoError(t, err)
	require.NoError(t, s.SaveCatalog(ctx, empty))

	_, err = s.ListCatalog(ctx, "empty")
	assert.ErrorIs(t, err, storage.ErrCatalogNotFound)

	require.NoError(t, s.SaveCatalog(ctx, &catalog.Catalog{Name: "app", Types: []catalog.Type{{FullName: "A"}}}))
	require.NoError(t, s.SaveCatalog(ctx, &catalog.Catalog{Name: "app"}))

	_, err = s.ListCatalog(ctx, "app")
	assert.ErrorIs(t, err, storage.ErrCatalogNotFound)
}
