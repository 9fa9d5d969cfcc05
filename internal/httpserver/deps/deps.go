package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/docstore/internal/index"
	"github.com/MrSnakeDoc/docstore/internal/logger"
)

// MirrorStatus reports the state of the optional Redis mirror.
type MirrorStatus interface {
	CountDocuments(ctx context.Context) (int64, error)
}

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time     // for testing, defaults to time.Now
	Store        *index.DocumentStore // the document store served over HTTP
	Mirror       MirrorStatus         // nil when the Redis mirror is disabled
	MaxBodyBytes int64                // max accepted request body size
}
