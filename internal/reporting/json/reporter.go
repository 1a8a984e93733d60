package json

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

// ManifestFile is written next to the aws_configs folder.
const ManifestFile = "manifest.json"

type Config struct {
	OutputDir string
}

// Reporter writes the run manifest: what was persisted per region and why
// every other category is missing.
type Reporter struct {
	config Config
	logger ports.Logger
}

var _ ports.Reporter = (*Reporter)(nil)

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	if cfg.OutputDir == "" {
		return nil, errors.New(errors.CodeConfigValidation, "manifest reporter needs an output folder")
	}
	return &Reporter{config: cfg, logger: logger}, nil
}

type manifestSummary struct {
	Regions   int `json:"regions"`
	Persisted int `json:"persisted"`
	Skipped   int `json:"skipped"`
	Failures  int `json:"failures"`
}

type manifest struct {
	domain.RunReport
	Summary manifestSummary `json:"summary"`
}

func (r *Reporter) Report(ctx context.Context, run domain.RunReport) error {
	if ctx.Err() != nil {
		r.logger.Warnf(ctx, "Manifest generation cancelled.")
		return ctx.Err()
	}

	m := manifest{RunReport: run, Summary: manifestSummary{Regions: len(run.Regions)}}
	for _, region := range run.Regions {
		m.Summary.Persisted += len(region.Persisted)
		m.Summary.Skipped += len(region.Skipped)
		m.Summary.Failures += len(region.Failures)
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run manifest: %w", err)
	}

	if err := os.MkdirAll(r.config.OutputDir, 0o755); err != nil {
		return errors.Wrap(err, errors.CodePersistError, "failed to create output folder for manifest")
	}
	path := filepath.Join(r.config.OutputDir, ManifestFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, errors.CodePersistError, fmt.Sprintf("failed to write '%s'", path))
	}

	r.logger.Debugf(ctx, "Run manifest written to %s", path)
	return nil
}
