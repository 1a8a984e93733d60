package ports

import (
	"context"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
)

// Persister stores one category document of one region.
type Persister interface {
	Persist(ctx context.Context, region string, category domain.Category, doc domain.Document) error
}

type Reporter interface {
	Report(ctx context.Context, run domain.RunReport) error
}
