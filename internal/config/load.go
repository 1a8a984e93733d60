package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

const EnvPrefix = "SNAPSHOT"

// SetDefaults registers every configuration key on v so that environment
// variables are picked up even when the config file does not mention them.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("regions", d.Regions)
	v.SetDefault("vpcs", d.VPCs)
	v.SetDefault("skipData", d.SkipData)
	v.SetDefault("profile", d.Profile)
	v.SetDefault("output_folder", d.OutputFolder)
	v.SetDefault("force", d.Force)
	v.SetDefault("test_access", d.TestAccess)
	v.SetDefault("settings.log_level", string(d.Settings.LogLevel))
	v.SetDefault("settings.log_format", string(d.Settings.LogFormat))
	v.SetDefault("settings.concurrency", d.Settings.Concurrency)
	v.SetDefault("settings.rps", d.Settings.RequestsPerSecond)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile loads the JSON config file at path into v. A missing file is
// only an error when the caller named it explicitly.
func ReadFile(v *viper.Viper, path string, explicit bool) (bool, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return false, nil
		}
		return false, errors.WrapUserFacing(err, errors.CodeConfigReadError,
			fmt.Sprintf("Cannot read config file '%s'.", path),
			"Check the path given with the '-c' option.")
	}

	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return false, errors.WrapUserFacing(err, errors.CodeConfigParseError,
			fmt.Sprintf("Config file '%s' is not valid JSON.", path),
			"Fix the syntax of the config file.")
	}
	return true, nil
}

// Load decodes v into a Config. Comma separated strings coming from the
// environment or flags are split into lists.
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigParseError, "failed to unmarshal configuration")
	}

	cfg.Regions = CleanList(cfg.Regions)
	cfg.VPCs = CleanList(cfg.VPCs)
	cfg.SkipData = CleanList(cfg.SkipData)
	return cfg, nil
}

// CleanList trims entries and drops empty ones, preserving order.
func CleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func Validate(ctx context.Context, cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, cfg)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.CodeConfigValidation, "configuration validation failed")
	}

	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, details.String(), "Please check your configuration file or flags.")
}
