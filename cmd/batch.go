package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/artscore/internal/batch"
	"github.com/dotcommander/artscore/internal/discovery"
	"github.com/dotcommander/artscore/internal/output"
)

var batchCmd = &cobra.Command{
	Use:   "batch [root]",
	Short: "Score every OCR text file under a directory",
	Long: `Finds OCR text files under root (default: current directory) using the
configured glob patterns (default **/*.txt), scores them concurrently and prints
each result followed by the tier distribution, the most common problems and the
lowest-scoring files.`,
	Example: `  artscore batch screenshots/
  artscore batch -p ER -j 8 --format json -o report.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runBatch(cmd, root)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, root string) error {
	start := time.Now()
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	files, err := discovery.NewFileDiscovery(root, cfg.Patterns, cfg.Exclude, cfg.FollowSymlinks).DiscoverFiles()
	if err != nil {
		return fmt.Errorf("error discovering files: %w", err)
	}
	logger.Debug("discovered files", "root", root, "count", len(files))

	parser, err := cfg.Parser()
	if err != nil {
		return err
	}

	results, err := batch.Run(cmd.Context(), files, batch.Options{
		Parser:      parser,
		Profile:     cfg.ScoringProfile(),
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	report := &output.Report{
		Profile:   cfg.ScoringProfile(),
		StartTime: start,
		Entries:   make([]output.Entry, 0, len(results)),
	}
	for _, r := range results {
		report.Entries = append(report.Entries, output.Entry{
			Source:    r.File,
			Result:    r.Result,
			Malformed: r.Malformed,
			Err:       r.Err,
		})
	}
	return emit(cmd, cfg, report)
}
