package cmd

import (
	"log"

	"ddl-extract/internal/schema"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [input]",
	Short: "List the tables found in a SQL dump",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetListConfig(args)
		if err != nil {
			return err
		}

		lines, err := schema.ReadLines(cfg.Input)
		if err != nil {
			return err
		}

		m := schema.Extract(lines)
		log.Printf("Found %d tables in %s", m.Len(), cfg.Input)
		printTableList(cmd.OutOrStdout(), m)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
