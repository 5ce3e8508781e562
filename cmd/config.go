package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultInput  = "_schema_dump.sql"
	DefaultOutput = "_schema_tables.txt"
	DefaultFormat = "text"
)

// ExtractConfig is the resolved configuration of one run.
type ExtractConfig struct {
	Input    string   `mapstructure:"input"`
	Output   string   `mapstructure:"output"`
	Format   string   `mapstructure:"format"`
	Tables   []string `mapstructure:"tables"`
	DryRun   bool     `mapstructure:"dry_run"`
	Progress bool     `mapstructure:"progress"`
}

type fileConfig struct {
	Extract ExtractConfig `mapstructure:"extract"`
}

func init() {
	viper.SetDefault("extract.input", DefaultInput)
	viper.SetDefault("extract.output", DefaultOutput)
	viper.SetDefault("extract.format", DefaultFormat)
	viper.SetDefault("extract.tables", []string{})
	viper.SetDefault("extract.dry_run", false)
	viper.SetDefault("extract.progress", false)
}

// loadConfig decodes the extract section (flag > env > config file >
// default). Positional args override the input and output paths.
func loadConfig(args []string) (*ExtractConfig, error) {
	// Unmarshal the whole tree: UnmarshalKey on a section misses bound flags.
	var fc fileConfig
	if err := viper.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("failed to parse extract config: %w", err)
	}
	cfg := &fc.Extract

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}

	if cfg.Input == "" {
		return nil, fmt.Errorf("no input dump configured (set extract.input or pass it as an argument)")
	}
	return cfg, nil
}

// GetExtractConfig resolves a run that writes a report.
func GetExtractConfig(args []string) (*ExtractConfig, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, err
	}
	if cfg.Output == "" {
		return nil, fmt.Errorf("no output path configured (set extract.output or pass it as an argument)")
	}
	return cfg, nil
}

// GetListConfig resolves a run that only reads the dump.
func GetListConfig(args []string) (*ExtractConfig, error) {
	return loadConfig(args)
}
