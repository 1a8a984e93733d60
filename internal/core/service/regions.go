package service

import (
	"context"
	"fmt"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

var regionNames = mustCompile(`.Regions[]? | .RegionName // empty`)

// RegionDirectory decides which regions a run covers.
type RegionDirectory struct {
	factory ports.ClientFactory
	limiter ports.RateLimiter
	logger  ports.Logger
}

func NewRegionDirectory(factory ports.ClientFactory, limiter ports.RateLimiter, logger ports.Logger) *RegionDirectory {
	return &RegionDirectory{factory: factory, limiter: limiter, logger: logger}
}

// Resolve returns explicit unchanged when it is non-empty. Otherwise the
// regions enabled for the account are listed from the bootstrap region.
func (d *RegionDirectory) Resolve(ctx context.Context, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		out := make([]string, len(explicit))
		copy(out, explicit)
		return out, nil
	}

	clients, err := ClientSetFor(d.factory, domain.BootstrapRegion)
	if err != nil {
		return nil, d.discoveryError(err)
	}
	doc, err := NewExecutor(clients, d.limiter, d.logger).
		Execute(ctx, domain.ServiceCompute, domain.OpDescribeRegions, domain.Arguments{})
	if err != nil {
		return nil, d.discoveryError(err)
	}
	regions, err := regionNames.strings(doc)
	if err != nil {
		return nil, d.discoveryError(err)
	}
	if len(regions) == 0 {
		return nil, d.discoveryError(fmt.Errorf("no regions returned by %s", domain.BootstrapRegion))
	}
	d.logger.Infof(ctx, "Discovered %d regions from %s", len(regions), domain.BootstrapRegion)
	return regions, nil
}

func (d *RegionDirectory) discoveryError(err error) error {
	return errors.WrapUserFacing(err, errors.CodeRegionDiscoveryError,
		"failed to list AWS regions",
		"Check your credentials, or list the regions explicitly with '--regions' or the 'regions' config key.")
}
