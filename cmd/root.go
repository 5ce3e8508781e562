package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "ddl-extract",
	Short: "Summarize the tables and columns of a SQL dump",
	Long: `ddl-extract reads a SQL dump, finds its CREATE TABLE statements and
writes a summary of every table: column names, declared types and
nullability, sorted by qualified table name.

Examples:
  ddl-extract extract                          # paths from ddl-extract.yaml
  ddl-extract extract dump.sql tables.txt      # explicit paths
  ddl-extract extract dump.sql out.yaml -f yaml
  ddl-extract list dump.sql`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ddl-extract.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("ddl-extract")
		viper.SetConfigType("yaml")
	}

	// DDL_EXTRACT_EXTRACT_INPUT -> extract.input
	viper.SetEnvPrefix("DDL_EXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
