package scheduler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/docstore/internal/domain"
	"github.com/MrSnakeDoc/docstore/internal/index"
	"github.com/MrSnakeDoc/docstore/internal/logger"
)

const seedYAML = `documents:
  - title: Report1
    content: annual figures
    author: {id: u1, name: Alice}
    created: 2023-01-01
  - title: Invoice1
    content: amount due
    author: {id: u2, name: Bob}
    created: 2023-06-01
  - content: no title, skipped
`

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))
	return path
}

func TestSeeder_Seed(t *testing.T) {
	store := index.NewDocumentStore()

	n, err := NewSeeder(writeSeed(t), store, logger.NewNop()).Seed()
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 2, store.Count())

	got := store.Search(domain.SearchRequest{AuthorIDs: []string{"u1"}})
	require.Len(t, got, 1)
	require.Equal(t, "Report1", got[0].Title)
	require.NotEmpty(t, got[0].ID)
}

func TestSeeder_SkipsNonEmptyStore(t *testing.T) {
	store := index.NewDocumentStore()
	_, err := store.Save(domain.Document{Title: "already here"})
	require.NoError(t, err)

	n, err := NewSeeder(writeSeed(t), store, logger.NewNop()).Seed()
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, 1, store.Count())
}

func TestSeeder_MissingFile(t *testing.T) {
	_, err := NewSeeder(filepath.Join(t.TempDir(), "absent.yaml"), index.NewDocumentStore(), logger.NewNop()).Seed()
	require.Error(t, err)
}
