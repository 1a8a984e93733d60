package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/output/filesystem"
	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws"
	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/aws-config-snapshot/internal/config"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/core/service"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
	"github.com/olusolaa/aws-config-snapshot/internal/log"
	jsonreport "github.com/olusolaa/aws-config-snapshot/internal/reporting/json"
	"github.com/olusolaa/aws-config-snapshot/internal/reporting/text"
)

// providerFactory builds the AWS provider. Replaced in tests.
type providerFactory func(ctx context.Context, profile string, logger ports.Logger) (*aws.Provider, error)

func defaultProviderFactory(ctx context.Context, profile string, logger ports.Logger) (*aws.Provider, error) {
	return aws.NewProvider(ctx, profile, logger)
}

// BuildApplicationFromViper loads the configuration held by v and wires
// every component of the run.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	return buildApplication(ctx, v, os.Stdout, defaultProviderFactory)
}

func buildApplication(ctx context.Context, v *viper.Viper, out io.Writer, newProvider providerFactory) (*Application, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debugf(ctx, "Using configuration file: %s", used)
	}

	applyListOverrides(ctx, cfg, v, logger)

	if err := config.Validate(ctx, cfg); err != nil {
		logger.Errorf(ctx, err, "Configuration validation failed")
		return nil, err
	}

	app := &Application{Logger: logger, Config: cfg, Out: out}

	provLog := logger.WithFields(map[string]any{"component": "provider"})
	provider, err := newProvider(ctx, cfg.Profile, provLog)
	if err != nil {
		if cfg.TestAccess {
			app.Access = failedSession{err: err}
			return app, nil
		}
		return nil, err
	}
	app.Access = provider
	if cfg.TestAccess {
		return app, nil
	}

	app.Engine, err = initEngine(cfg, provider, logger)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return app, nil
}

func initLogger(cfg *config.Config) (ports.Logger, error) {
	logger, err := log.NewLogger(log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat})
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation,
			fmt.Sprintf("Invalid logging settings (level %q, format %q).", cfg.Settings.LogLevel, cfg.Settings.LogFormat),
			"Use --log-level debug|info|warn|error and --log-format text|json|console.")
	}
	return logger, nil
}

func initEngine(cfg *config.Config, factory ports.ClientFactory, logger ports.Logger) (*service.SnapshotEngine, error) {
	rateLimiter := limiter.New(cfg.Settings.RequestsPerSecond, logger.WithFields(map[string]any{"component": "limiter"}))
	persister := filesystem.NewPersister(cfg.OutputFolder, logger.WithFields(map[string]any{"component": "persister"}))

	manifest, err := jsonreport.NewReporter(jsonreport.Config{OutputDir: cfg.OutputFolder},
		logger.WithFields(map[string]any{"component": "reporter", "type": "json"}))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize manifest reporter")
	}
	summary, err := text.NewReporter(text.Config{},
		logger.WithFields(map[string]any{"component": "reporter", "type": "text"}))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize summary reporter")
	}

	skip := make([]domain.Category, 0, len(cfg.SkipData))
	for _, name := range cfg.SkipData {
		skip = append(skip, domain.Category(name))
	}

	engine, err := service.NewSnapshotEngine(
		factory, rateLimiter, persister,
		logger.WithFields(map[string]any{"component": "engine"}),
		service.EngineOptions{
			Regions:     cfg.Regions,
			VPCs:        cfg.VPCs,
			SkipData:    skip,
			Profile:     cfg.Profile,
			OutputDir:   cfg.OutputFolder,
			Concurrency: cfg.Settings.Concurrency,
		},
		manifest, summary,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize snapshot engine")
	}
	return engine, nil
}

// failedSession reports a session that could not be created as an access
// failure.
type failedSession struct {
	err error
}

func (f failedSession) CheckAccess(context.Context) (domain.Identity, error) {
	return domain.Identity{}, f.err
}
