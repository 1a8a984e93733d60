package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
)

type Config struct {
	NoColor bool
	Writer  io.Writer
}

// Reporter prints a per-region summary table at the end of a run.
type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

var _ ports.Reporter = (*Reporter)(nil)

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			cfg.NoColor = true
		}
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return &Reporter{config: cfg, writer: w, logger: logger}, nil
}

func (r *Reporter) Report(ctx context.Context, run domain.RunReport) error {
	if len(run.Regions) == 0 {
		fmt.Fprintln(r.writer, "No regions were processed.")
		return nil
	}

	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "Snapshot %s\n", run.RunID)
	fmt.Fprintln(tw, "==================")
	fmt.Fprintln(tw, "Region\tCollected\tFailed\tSkipped")
	fmt.Fprintln(tw, "------\t---------\t------\t-------")

	var collected, failed, skipped int
	for _, region := range run.Regions {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		collected += len(region.Persisted)
		failed += len(region.Failures)
		skipped += len(region.Skipped)

		failedCell := fmt.Sprint(len(region.Failures))
		if len(region.Failures) > 0 {
			failedCell = red(failedCell)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", region.Region, green(len(region.Persisted)), failedCell, yellow(len(region.Skipped)))
	}

	fmt.Fprintln(tw, "\nFailures:")
	fmt.Fprintln(tw, "---------")
	if failed == 0 {
		fmt.Fprintln(tw, "none")
	}
	for _, region := range run.Regions {
		for _, f := range region.Failures {
			target := string(f.Category)
			if f.ItemID != "" {
				target = fmt.Sprintf("%s [%s]", f.Category, f.ItemID)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", region.Region, target, red(f.Code))
		}
	}

	fmt.Fprintln(tw, "\nSummary:")
	fmt.Fprintln(tw, "-------")
	fmt.Fprintf(tw, "Regions:\t%d\n", len(run.Regions))
	fmt.Fprintf(tw, "Files written:\t%s\n", green(collected))
	fmt.Fprintf(tw, "Failures:\t%s\n", red(failed))
	fmt.Fprintf(tw, "Skipped:\t%s\n", yellow(skipped))
	fmt.Fprintf(tw, "Output:\t%s\n", run.OutputDir)
	fmt.Fprintf(tw, "Duration:\t%s\n", run.FinishedAt.Sub(run.StartedAt))

	return tw.Flush()
}
