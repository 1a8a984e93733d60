package app

import (
	"context"

	"github.com/spf13/viper"

	"github.com/olusolaa/aws-config-snapshot/internal/config"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
)

// Viper keys holding the comma separated list flags. They replace the
// corresponding config file lists when set.
const (
	OverrideRegionsKey = "cli.regions"
	OverrideVPCsKey    = "cli.vpcs"
	OverrideSkipKey    = "cli.skip"
)

func applyListOverrides(ctx context.Context, cfg *config.Config, v *viper.Viper, logger ports.Logger) {
	if list, ok := parseListOverride(v.GetString(OverrideRegionsKey)); ok {
		logger.Debugf(ctx, "Overriding regions from command line: %v", list)
		cfg.Regions = list
	}
	if list, ok := parseListOverride(v.GetString(OverrideVPCsKey)); ok {
		logger.Debugf(ctx, "Overriding VPC filter from command line: %v", list)
		cfg.VPCs = list
	}
	if list, ok := parseListOverride(v.GetString(OverrideSkipKey)); ok {
		logger.Debugf(ctx, "Overriding skip list from command line: %v", list)
		cfg.SkipData = list
	}
}

// parseListOverride splits a comma separated flag value. An empty or
// blank-only value is not an override.
func parseListOverride(raw string) ([]string, bool) {
	if raw == "" {
		return nil, false
	}
	list := config.CleanList([]string{raw})
	if len(list) == 0 {
		return nil, false
	}
	return list, true
}
