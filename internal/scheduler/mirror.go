package scheduler

import (
	"context"

	"github.com/MrSnakeDoc/docstore/internal/domain"
)

// Mirror is the external copy of the store the scheduler reads from and writes to.
// *redisstore.Store satisfies it.
type Mirror interface {
	SaveDocumentsMany(ctx context.Context, docs []domain.Document) error
	GetAllDocuments(ctx context.Context) ([]domain.Document, error)
}
