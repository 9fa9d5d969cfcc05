package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/docstore/internal/domain"
)

// ErrNotFound is returned when a document is not mirrored in Redis
var ErrNotFound = errors.New("document not mirrored")

// Store mirrors documents into Redis.
// Each document is a JSON string under DocumentKey(id); AllDocumentsKey is a set of IDs.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a Redis mirror store. An empty prefix falls back to DefaultKeyPrefix.
func NewStore(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{
		client: client,
		prefix: prefix,
	}
}

// SaveDocument writes a single document
func (s *Store) SaveDocument(ctx context.Context, doc domain.Document) error {
	return s.SaveDocumentsMany(ctx, []domain.Document{doc})
}

// SaveDocumentsMany writes documents in one transactional pipeline
func (s *Store) SaveDocumentsMany(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, doc := range docs {
		if doc.IsNew() {
			return fmt.Errorf("%w: cannot mirror a document without id", domain.ErrInvalidDocument)
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %s: %w", doc.ID, err)
		}
		pipe.Set(ctx, s.DocumentKey(doc.ID), data, 0)
		pipe.SAdd(ctx, s.AllDocumentsKey(), doc.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save documents: %w", err)
	}
	return nil
}

// GetDocument retrieves a mirrored document by ID
func (s *Store) GetDocument(ctx context.Context, id string) (domain.Document, error) {
	data, err := s.client.Get(ctx, s.DocumentKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return domain.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("failed to unmarshal document %s: %w", id, err)
	}
	return doc, nil
}

// GetAllDocuments retrieves every mirrored document.
// IDs listed in the set whose value is missing or corrupt are skipped.
func (s *Store) GetAllDocuments(ctx context.Context) ([]domain.Document, error) {
	ids, err := s.client.SMembers(ctx, s.AllDocumentsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get document ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Document{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.DocumentKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}

	docs := make([]domain.Document, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var doc domain.Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil || doc.IsNew() {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// CountDocuments returns the number of mirrored document IDs
func (s *Store) CountDocuments(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, s.AllDocumentsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}
