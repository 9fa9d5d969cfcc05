package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/docstore/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *mr.Miniredis) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, "test:"), m
}

func TestStore_SaveGet(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	doc := domain.Document{
		ID:      "d1",
		Title:   "Report1",
		Content: "figures",
		Author:  domain.Author{ID: "u1", Name: "Alice"},
		Created: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "d1")
	require.NoError(t, err)
	require.True(t, got.Equal(doc), "got %+v, want %+v", got, doc)

	require.True(t, m.Exists("test:doc:d1"))
	ok, err := m.SIsMember("test:docs:all", "d1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetDocument(context.Background(), "nope")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_SaveManyAndGetAll(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	docs := []domain.Document{
		{ID: "a", Title: "A", Created: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Title: "B", Created: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, store.SaveDocumentsMany(ctx, docs))

	// Dangling id and corrupt value are skipped.
	_, err := m.SAdd("test:docs:all", "dangling", "corrupt")
	require.NoError(t, err)
	require.NoError(t, m.Set("test:doc:corrupt", "{not json"))

	all, err := store.GetAllDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	n, err := store.CountDocuments(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
}

func TestStore_SaveManyRejectsMissingID(t *testing.T) {
	store, m := newTestStore(t)

	err := store.SaveDocumentsMany(context.Background(), []domain.Document{{Title: "no id"}})
	require.True(t, errors.Is(err, domain.ErrInvalidDocument))
	require.False(t, m.Exists("test:docs:all"))
}

func TestStore_GetAllEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	all, err := store.GetAllDocuments(context.Background())
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestNewStoreDefaultPrefix(t *testing.T) {
	store := NewStore(nil, "")
	require.Equal(t, "docstore:doc:x", store.DocumentKey("x"))
	require.Equal(t, "docstore:docs:all", store.AllDocumentsKey())
}
