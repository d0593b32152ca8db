package es

import (
	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// TypeDocument is the indexed form of one catalog type. The type itself is
// stored but not indexed.
type TypeDocument struct {
	ID       string       `json:"id"`
	Catalog  string       `json:"catalog"`
	FullName string       `json:"full_name"`
	Doc      catalog.Type `json:"doc"`
}

func newTypeDocument(catalogName string, t catalog.Type) TypeDocument {
	return TypeDocument{
		ID:       t.ID.String(),
		Catalog:  catalogName,
		FullName: t.FullName,
		Doc:      t,
	}
}

func typeMapping() *types.TypeMapping {
	doc := types.NewObjectProperty()
	enabled := false
	doc.Enabled = &enabled

	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":        types.NewKeywordProperty(),
			"catalog":   types.NewKeywordProperty(),
			"full_name": types.NewKeywordProperty(),
			"doc":       doc,
		},
	}
}
