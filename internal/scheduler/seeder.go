package scheduler

import (
	"fmt"

	"github.com/MrSnakeDoc/docstore/internal/index"
	"github.com/MrSnakeDoc/docstore/internal/logger"
	"github.com/MrSnakeDoc/docstore/internal/sources/seed"
)

// Seeder saves the documents of a seed file into an empty store
type Seeder struct {
	loader *seed.Loader
	mapper *seed.Mapper
	store  *index.DocumentStore
	logger logger.Logger
}

// NewSeeder creates a seeder for the given file
func NewSeeder(filePath string, store *index.DocumentStore, log logger.Logger) *Seeder {
	return &Seeder{
		loader: seed.NewLoader(filePath),
		mapper: seed.NewMapper(),
		store:  store,
		logger: log.With(logger.String("file", filePath)),
	}
}

// Seed loads the seed file and saves each document, which assigns fresh IDs.
// A store that already holds documents (e.g. restored from the mirror) is left untouched.
func (s *Seeder) Seed() (int, error) {
	if n := s.store.Count(); n > 0 {
		s.logger.Info("store not empty, skipping seed",
			logger.Int("documents", n))
		return 0, nil
	}

	file, err := s.loader.Load()
	if err != nil {
		return 0, err
	}

	docs, skipped := s.mapper.ToDocuments(file)
	for _, sk := range skipped {
		s.logger.Warn("skipping seed entry",
			logger.Int("index", sk.Index),
			logger.String("reason", sk.Reason))
	}

	for _, doc := range docs {
		if _, err := s.store.Save(doc); err != nil {
			return 0, fmt.Errorf("failed to save seed document %q: %w", doc.Title, err)
		}
	}

	s.logger.Info("seeded documents",
		logger.Int("count", len(docs)),
		logger.Int("skipped", len(skipped)))

	return len(docs), nil
}
