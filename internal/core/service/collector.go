package service

import (
	"context"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// Collector fetches every category of a registry, one after another.
type Collector struct {
	fetcher   Fetcher
	expanders []expander
	logger    ports.Logger
}

func NewCollector(fetcher Fetcher, logger ports.Logger) *Collector {
	return &Collector{fetcher: fetcher, expanders: defaultExpanders, logger: logger}
}

// Collect never fails because of a single category: a failed fetch is logged,
// recorded and left out of the mapping. Dependent fetches run right after
// their trigger category succeeds. Only cancellation stops the walk, in which
// case the partial snapshot is returned with the context error.
func (c *Collector) Collect(ctx context.Context, registry *domain.FetchRegistry) (*domain.RegionSnapshot, error) {
	region := registry.Region()
	logger := c.logger.WithFields(map[string]any{"region": region})
	snapshot := &domain.RegionSnapshot{
		Region:   region,
		Config:   domain.ConfigMapping{},
		Skipped:  registry.Skipped(),
		Failures: []domain.Failure{},
	}

	for _, category := range registry.Categories() {
		if err := ctx.Err(); err != nil {
			return snapshot, err
		}
		descriptor, _ := registry.Get(category)
		categoryLogger := logger.WithFields(map[string]any{"category": category.String()})

		doc, err := c.fetcher.Execute(ctx, descriptor.Service(), descriptor.Operation(), descriptor.Args())
		if err != nil {
			if ctx.Err() != nil {
				return snapshot, ctx.Err()
			}
			categoryLogger.Errorf(ctx, err, "Failed to fetch %s in %s", category, region)
			snapshot.Failures = append(snapshot.Failures, failureFor(category, "", err))
			continue
		}
		snapshot.Config[category] = doc
		categoryLogger.Debugf(ctx, "Fetched %s (%s)", category, descriptor)

		for _, x := range c.expanders {
			if x.trigger != category {
				continue
			}
			x = x.without(registry.IsSkipped)
			if len(x.fetches) == 0 {
				continue
			}
			result, err := x.expand(ctx, c.fetcher, categoryLogger, doc)
			if err != nil {
				if ctx.Err() != nil {
					return snapshot, ctx.Err()
				}
				categoryLogger.Errorf(ctx, err, "Dependent fetches of %s failed", category)
				for _, f := range x.fetches {
					snapshot.Failures = append(snapshot.Failures, failureFor(f.category, "", err))
				}
				continue
			}
			for _, f := range x.fetches {
				snapshot.Config[f.category] = result.document(f.category)
			}
			snapshot.Failures = append(snapshot.Failures, result.failures...)
		}
	}

	logger.Infof(ctx, "Collected %d categories in %s (%d failed, %d skipped)",
		len(snapshot.Config), region, len(snapshot.Failures), len(snapshot.Skipped))
	return snapshot, nil
}

func failureFor(category domain.Category, itemID string, err error) domain.Failure {
	code := errors.GetCode(err)
	if code == errors.CodeUnknown {
		code = errors.CodeFetchError
	}
	return domain.Failure{
		Category: category,
		ItemID:   itemID,
		Code:     code.String(),
		Reason:   err.Error(),
	}
}
