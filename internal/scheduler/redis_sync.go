package scheduler

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/docstore/internal/index"
	"github.com/MrSnakeDoc/docstore/internal/logger"
)

// RedisSyncer restores mirrored documents into the memory store on startup
type RedisSyncer struct {
	mirror Mirror
	store  *index.DocumentStore
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(mirror Mirror, store *index.DocumentStore, log logger.Logger) *RedisSyncer {
	return &RedisSyncer{
		mirror: mirror,
		store:  store,
		logger: log,
	}
}

// Sync loads every mirrored document and restores it verbatim, keeping IDs and created timestamps.
// It returns the number of restored documents.
func (rs *RedisSyncer) Sync(ctx context.Context) (int, error) {
	rs.logger.Info("restoring documents from redis mirror")

	docs, err := rs.mirror.GetAllDocuments(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read mirror: %w", err)
	}

	if len(docs) == 0 {
		rs.logger.Info("redis mirror is empty")
		return 0, nil
	}

	n, err := rs.store.Restore(docs)
	if err != nil {
		return 0, fmt.Errorf("failed to restore documents: %w", err)
	}

	rs.logger.Info("restored documents from redis mirror",
		logger.Int("count", n))

	return n, nil
}
