package config

import (
	"github.com/olusolaa/aws-config-snapshot/internal/log"
)

const (
	DefaultConfigFile   = "config.json"
	DefaultOutputFolder = "aws-snapshot"
	DefaultConcurrency  = 4
	DefaultRPS          = 20
)

type Config struct {
	Regions      []string       `mapstructure:"regions" validate:"dive,required"`
	VPCs         []string       `mapstructure:"vpcs" validate:"dive,startswith=vpc-"`
	SkipData     []string       `mapstructure:"skipData" validate:"dive,required"`
	Profile      string         `mapstructure:"profile"`
	OutputFolder string         `mapstructure:"output_folder" validate:"required_unless=TestAccess true"`
	Force        bool           `mapstructure:"force"`
	TestAccess   bool           `mapstructure:"test_access"`
	Settings     SettingsConfig `mapstructure:"settings"`
}

type SettingsConfig struct {
	LogLevel          log.Level  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat         log.Format `mapstructure:"log_format" validate:"oneof=text json console"`
	Concurrency       int        `mapstructure:"concurrency" validate:"min=1,max=64"`
	RequestsPerSecond int        `mapstructure:"rps" validate:"min=0,max=100"`
}

func DefaultConfig() *Config {
	return &Config{
		Regions:      []string{},
		VPCs:         []string{},
		SkipData:     []string{},
		OutputFolder: DefaultOutputFolder,
		Settings: SettingsConfig{
			LogLevel:          log.LevelInfo,
			LogFormat:         log.FormatText,
			Concurrency:       DefaultConcurrency,
			RequestsPerSecond: DefaultRPS,
		},
	}
}
