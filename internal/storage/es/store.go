package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

// maxTypes is the default index.max_result_window.
const maxTypes = 10000

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Store{
		client:    client,
		indexName: config.IndexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(typeMapping()).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func (s *Store) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	_, err := s.client.DeleteByQuery(s.indexName).
		Query(catalogQuery(c.Name)).
		Refresh(true).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete catalog %q: %w", c.Name, err)
	}

	if len(c.Types) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         s.indexName,
		Client:        s.client,
		NumWorkers:    2,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
		Refresh:       "wait_for",
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, t := range c.Types {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		doc := newTypeDocument(c.Name, t)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "full_name", doc.FullName)
			failed.Add(1)
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.ID,
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful.Add(1)
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Catalog indexed",
		"catalog", c.Name,
		"successful", successful.Load(),
		"failed", failed.Load(),
		"index", s.indexName)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d types", n, len(c.Types))
	}
	return nil
}

func (s *Store) ListCatalog(ctx context.Context, name string) (*catalog.Catalog, error) {
	asc := sortorder.Asc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(catalogQuery(name)).
		Size(maxTypes).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"full_name": {Order: &asc},
			},
		}).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "catalog", name)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	if len(res.Hits.Hits) == 0 {
		return nil, storage.ErrCatalogNotFound
	}

	c := &catalog.Catalog{Name: name, Types: make([]catalog.Type, 0, len(res.Hits.Hits))}
	for _, hit := range res.Hits.Hits {
		var doc TypeDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		c.Types = append(c.Types, doc.Doc)
	}
	return c, nil
}

// Healthy pings the cluster.
func (s *Store) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}

func (s *Store) Close() {}

func catalogQuery(name string) *types.Query {
	return &types.Query{
		Term: map[string]types.TermQuery{
			"catalog": {Value: name},
		},
	}
}
