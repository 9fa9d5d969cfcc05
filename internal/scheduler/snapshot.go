package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/docstore/internal/index"
	"github.com/MrSnakeDoc/docstore/internal/logger"
)

// Snapshotter periodically copies every document of the memory store to the mirror
type Snapshotter struct {
	mirror   Mirror
	store    *index.DocumentStore
	logger   logger.Logger
	interval time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSnapshotter creates a new snapshotter
func NewSnapshotter(
	mirror Mirror,
	store *index.DocumentStore,
	log logger.Logger,
	interval time.Duration,
) *Snapshotter {
	return &Snapshotter{
		mirror:   mirror,
		store:    store,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start flushes once, then keeps flushing every interval until Stop or ctx is done
func (s *Snapshotter) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("snapshot interval must be > 0, got %v", s.interval)
	}

	if _, err := s.Flush(ctx); err != nil {
		s.logger.Warn("initial snapshot failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	go func() {
		defer close(s.doneCh)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := s.Flush(ctx); err != nil {
					s.logger.Error("snapshot failed",
						logger.Error(err))
				}
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop ends the periodic loop and writes a final snapshot.
// It must only be called after a successful Start.
func (s *Snapshotter) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh

	_, err := s.Flush(ctx)
	return err
}

// Flush writes every stored document to the mirror and returns how many were written
func (s *Snapshotter) Flush(ctx context.Context) (int, error) {
	docs := s.store.All()
	if len(docs) == 0 {
		s.logger.Debug("nothing to snapshot")
		return 0, nil
	}

	start := time.Now()
	if err := s.mirror.SaveDocumentsMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("failed to write snapshot: %w", err)
	}

	s.logger.Debug("snapshot written",
		logger.Int("count", len(docs)),
		logger.Duration("duration", time.Since(start)))

	return len(docs), nil
}
