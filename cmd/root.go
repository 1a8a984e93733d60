package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/aws-config-snapshot/internal/app"
	"github.com/olusolaa/aws-config-snapshot/internal/config"
	apperrors "github.com/olusolaa/aws-config-snapshot/internal/errors"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aws-config-snapshot",
	Short: "Captures the configuration of AWS resources into JSON files.",
	Long: `aws-config-snapshot enumerates EC2, load balancing, RDS and Elasticsearch
resources in every requested region and writes one JSON document per resource
category under <output-folder>/aws_configs/<region>/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			printError(err)
			return err
		}

		if err := application.Run(cmd.Context()); err != nil {
			printError(err)
			return err
		}
		return nil
	},
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", config.DefaultConfigFile, "Configuration file (JSON)")
	flags.StringP("profile", "p", "", "AWS shared config profile")
	flags.StringP("output-folder", "o", config.DefaultOutputFolder, "Folder the snapshot is written to")
	flags.BoolP("test-access", "t", false, "Only check that the credentials can reach AWS")
	flags.BoolP("force", "f", false, "Overwrite the output folder if it exists")
	flags.Int("concurrency", config.DefaultConcurrency, "Regions collected in parallel")
	flags.Int("rps", config.DefaultRPS, "AWS API requests per second")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (text, json, console)")
	flags.String("regions", "", "Comma separated regions, overrides the config file")
	flags.String("vpcs", "", "Comma separated VPC ids, overrides the config file")
	flags.String("skip", "", "Comma separated categories to skip, dependent ones such as LoadBalancerListeners included; overrides the config file")

	bindings := map[string]string{
		"profile":              "profile",
		"output_folder":        "output-folder",
		"test_access":          "test-access",
		"force":                "force",
		"settings.concurrency": "concurrency",
		"settings.rps":         "rps",
		"settings.log_level":   "log-level",
		"settings.log_format":  "log-format",
		app.OverrideRegionsKey: "regions",
		app.OverrideVPCsKey:    "vpcs",
		app.OverrideSkipKey:    "skip",
	}
	for key, flag := range bindings {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}

	config.SetDefaults(viper.GetViper())

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		_ = c.Usage()
		return err
	})
}

func initializeConfig(cmd *cobra.Command) error {
	explicit := cmd.Flags().Changed("config")
	found, err := config.ReadFile(viper.GetViper(), cfgFile, explicit)
	if err != nil {
		printError(err)
		return err
	}
	if !found {
		fmt.Fprintln(os.Stderr, "Config file not found, using defaults and environment variables.")
	}
	return nil
}

func printError(err error) {
	userMsg, suggestion, _ := apperrors.GetUserFacingMessage(err)
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
}
