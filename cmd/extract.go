package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	"ddl-extract/internal/report"
	"ddl-extract/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	format string
	tables []string
)

var extractCmd = &cobra.Command{
	Use:   "extract [input [output]]",
	Short: "Write a table/column summary of a SQL dump",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetExtractConfig(args)
		if err != nil {
			return err
		}

		// Table filter: flag > config > all tables.
		if len(tables) > 0 {
			cfg.Tables = tables
		}

		return runExtract(cfg, cmd.OutOrStdout())
	},
}

func init() {
	RootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&format, "format", "f", DefaultFormat, "Report format (text, yaml, json)")
	extractCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Only report these tables (comma-separated, qualified or bare names)")
	extractCmd.Flags().Bool("dry-run", false, "List the tables that would be written without writing the report")
	extractCmd.Flags().Bool("progress", false, "Show a progress bar while scanning")

	viper.BindPFlag("extract.format", extractCmd.Flags().Lookup("format"))
	viper.BindPFlag("extract.dry_run", extractCmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("extract.progress", extractCmd.Flags().Lookup("progress"))
}

// runExtract performs one extraction: read, scan, filter, write.
func runExtract(cfg *ExtractConfig, out io.Writer) error {
	w, err := report.GetWriter(cfg.Format)
	if err != nil {
		return err
	}

	log.Printf("Reading %s...", cfg.Input)
	start := time.Now()
	lines, err := schema.ReadLines(cfg.Input)
	if err != nil {
		return err
	}

	m, stats := scan(lines, cfg.Progress)
	log.Printf("Scanned %d lines: %d tables, %d columns (%d skipped, %d unreadable, %d redefined) in %s",
		stats.Lines, stats.Tables, stats.Columns, stats.Skipped, stats.Malformed, stats.Redefined, time.Since(start))

	if len(cfg.Tables) > 0 {
		m = m.Filter(cfg.Tables)
		if m.Len() == 0 {
			return fmt.Errorf("no matching tables found for inputs: %v", cfg.Tables)
		}
	}

	if cfg.DryRun {
		log.Println("[SIMULATION] Dry-Run Mode Active: No report will be written.")
		printTableList(out, m)
		return nil
	}

	if err := report.WriteFile(cfg.Output, w, m); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d tables to %s\n", m.Len(), cfg.Output)
	return nil
}

// scan runs the extraction pass, drawing a progress bar when asked.
func scan(lines []string, showProgress bool) (*schema.Map, schema.Stats) {
	ex := &schema.Extractor{}

	if showProgress && len(lines) > 0 {
		uiprogress.Start()
		bar := uiprogress.AddBar(len(lines)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Scanning: "
		})
		ex.Progress = func(done, total int) {
			bar.Set(done)
		}
		defer uiprogress.Stop()
	}

	m := ex.Run(lines)
	return m, ex.Stats
}

func printTableList(out io.Writer, m *schema.Map) {
	for i, t := range m.Tables() {
		fmt.Fprintf(out, "[%02d] %s (%d columns)\n", i+1, t.Key(), len(t.Columns))
	}
}
