package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

const defaultConcurrency = 4

// EngineOptions carry the operator's selection for one run.
type EngineOptions struct {
	Regions     []string
	VPCs        []string
	SkipData    []domain.Category
	Profile     string
	OutputDir   string
	Concurrency int
}

// SnapshotEngine drives a run: resolve regions, build every registry, then
// collect and persist the regions concurrently and report the outcome.
type SnapshotEngine struct {
	factory   ports.ClientFactory
	limiter   ports.RateLimiter
	persister ports.Persister
	reporters []ports.Reporter
	logger    ports.Logger
	opts      EngineOptions

	now   func() time.Time
	runID func() string
}

var _ ports.SnapshotEngine = (*SnapshotEngine)(nil)

func NewSnapshotEngine(
	factory ports.ClientFactory,
	limiter ports.RateLimiter,
	persister ports.Persister,
	logger ports.Logger,
	opts EngineOptions,
	reporters ...ports.Reporter,
) (*SnapshotEngine, error) {
	if factory == nil {
		return nil, errors.New(errors.CodeInternal, "client factory cannot be nil")
	}
	if persister == nil {
		return nil, errors.New(errors.CodeInternal, "persister cannot be nil")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	return &SnapshotEngine{
		factory:   factory,
		limiter:   limiter,
		persister: persister,
		reporters: reporters,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
		runID:     uuid.NewString,
	}, nil
}

type regionPlan struct {
	fetcher  Fetcher
	registry *domain.FetchRegistry
	logger   ports.Logger
}

func (e *SnapshotEngine) Run(ctx context.Context) error {
	run := domain.RunReport{
		RunID:     e.runID(),
		StartedAt: e.now().UTC(),
		Profile:   e.opts.Profile,
		OutputDir: e.opts.OutputDir,
		VPCs:      append([]string{}, e.opts.VPCs...),
		SkipData:  append([]domain.Category{}, e.opts.SkipData...),
	}
	logger := e.logger.WithFields(map[string]any{"run_id": run.RunID})

	regions, err := NewRegionDirectory(e.factory, e.limiter, logger).Resolve(ctx, e.opts.Regions)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "Snapshotting %d regions: %v", len(regions), regions)

	plans, err := e.plan(ctx, logger, regions)
	if err != nil {
		return err
	}

	reports := make([]domain.RegionReport, len(plans))
	g := new(errgroup.Group)
	g.SetLimit(e.opts.Concurrency)
	for i, p := range plans {
		g.Go(func() error {
			snapshot, err := NewCollector(p.fetcher, p.logger).Collect(ctx, p.registry)
			if snapshot != nil {
				reports[i] = e.persist(ctx, p.logger, snapshot)
			}
			return err
		})
	}
	collectErr := g.Wait()

	run.Regions = reports
	run.FinishedAt = e.now().UTC()
	for _, r := range e.reporters {
		if err := r.Report(ctx, run); err != nil {
			logger.Errorf(ctx, err, "Failed to write run report")
		}
	}

	if collectErr != nil {
		return errors.Wrap(collectErr, errors.CodeTimeout, "snapshot run interrupted")
	}
	logger.Infof(ctx, "Snapshot run %s finished in %s", run.RunID, run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	return nil
}

// plan builds the registry of every region before anything is fetched or
// written. One failing region aborts the run.
func (e *SnapshotEngine) plan(ctx context.Context, logger ports.Logger, regions []string) ([]regionPlan, error) {
	plans := make([]regionPlan, len(regions))
	builder := NewRegistryBuilder(logger)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for i, region := range regions {
		g.Go(func() error {
			regionLogger := logger.WithFields(map[string]any{"region": region})
			clients, err := ClientSetFor(e.factory, region)
			if err != nil {
				return err
			}
			fetcher := NewExecutor(clients, e.limiter, regionLogger)
			registry, err := builder.Build(gctx, fetcher, region, e.opts.VPCs, e.opts.SkipData)
			if err != nil {
				regionLogger.Errorf(gctx, err, "Failed to build fetch registry for %s", region)
				return err
			}
			plans[i] = regionPlan{fetcher: fetcher, registry: registry, logger: regionLogger}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeRegistryBuildError,
			"failed to prepare the snapshot",
			"Check the error above; no files were written.")
	}
	return plans, nil
}

// persist writes every collected category and reports what landed on disk.
func (e *SnapshotEngine) persist(ctx context.Context, logger ports.Logger, snapshot *domain.RegionSnapshot) domain.RegionReport {
	report := domain.RegionReport{
		Region:    snapshot.Region,
		Persisted: []domain.Category{},
		Skipped:   append([]domain.Category{}, snapshot.Skipped...),
		Failures:  append([]domain.Failure{}, snapshot.Failures...),
	}
	for _, category := range snapshot.Config.Sorted() {
		if err := e.persister.Persist(ctx, snapshot.Region, category, snapshot.Config[category]); err != nil {
			logger.Errorf(ctx, err, "Failed to write %s for %s", category, snapshot.Region)
			report.Failures = append(report.Failures, domain.Failure{
				Category: category,
				Code:     errors.CodePersistError.String(),
				Reason:   fmt.Sprintf("write failed: %v", err),
			})
			continue
		}
		report.Persisted = append(report.Persisted, category)
	}
	return report
}
