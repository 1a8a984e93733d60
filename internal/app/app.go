package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/output/filesystem"
	"github.com/olusolaa/aws-config-snapshot/internal/config"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
)

const (
	accessGranted = "You have access to AWS!"
	accessDenied  = "You may not have access. Exception while accessing AWS: %v"
)

// Application ties the configured components together for one invocation.
type Application struct {
	Engine ports.SnapshotEngine
	Access ports.AccessChecker
	Logger ports.Logger
	Config *config.Config
	Out    io.Writer
}

// Run performs the access check when requested, otherwise prepares the
// output folder and runs the snapshot engine.
func (a *Application) Run(ctx context.Context) error {
	if a.Config.TestAccess {
		a.testAccess(ctx)
		return nil
	}

	if err := filesystem.PrepareOutputDir(a.Config.OutputFolder, a.Config.Force); err != nil {
		return err
	}

	a.Logger.Infof(ctx, "Starting snapshot into %s", a.Config.OutputFolder)
	if err := a.Engine.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, err, "Snapshot failed")
		return err
	}
	a.Logger.Infof(ctx, "Snapshot completed")
	return nil
}

// testAccess never fails the process; the outcome is printed.
func (a *Application) testAccess(ctx context.Context) {
	identity, err := a.Access.CheckAccess(ctx)
	if err != nil {
		a.Logger.Debugf(ctx, "Access check failed: %v", err)
		color.New(color.FgRed).Fprintf(a.Out, accessDenied+"\n", err)
		return
	}

	color.New(color.FgGreen).Fprintln(a.Out, accessGranted)
	fmt.Fprintf(a.Out, "Account: %s\nARN: %s\nRegions visible: %d\n", identity.Account, identity.ARN, identity.RegionCount)
}
