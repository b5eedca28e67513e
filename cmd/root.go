package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/artscore/internal/config"
	"github.com/dotcommander/artscore/internal/output"
	"github.com/dotcommander/artscore/internal/outputters"
)

// Version is set at build time.
var Version = "dev"

var (
	profileName     string
	locale          string
	quiet           bool
	verbose         bool
	outputFormat    string
	outputFile      string
	failOnMalformed bool
	concurrency     int
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "artscore",
	Short: "Score artifacts from OCR'd substat text",
	Long: `artscore reads the OCR text of an artifact's substat block, classifies each
line, and scores the artifact under a profile. Crit rate and crit damage always
count; each profile adds one more stat (ATK%, Energy Recharge, DEF%, HP% or
Elemental Mastery).

Tiers: SS >= 45, S >= 35, A >= 25, otherwise B.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags()
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&profileName, "profile", "p", "CRIT", "Scoring profile (CRIT|ENERGY_RECHARGE|DEF|HP|ELEMENTAL_MASTERY)")
	flags.StringVarP(&locale, "locale", "l", "ja", "Language of the OCR text (ja|en)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Print one line per entry")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file for json/markdown reports")
	flags.BoolVar(&failOnMalformed, "fail-on-malformed", false, "Exit 1 when any line could not be parsed")
	flags.IntVarP(&concurrency, "concurrency", "j", 4, "Files processed at once by batch")
}

// bindFlags ties the persistent flags to viper keys. It runs before every
// command so a viper.Reset in between does not lose the bindings.
func bindFlags() error {
	flags := rootCmd.PersistentFlags()
	bindings := map[string]string{
		"profile":         "profile",
		"locale":          "locale",
		"quiet":           "quiet",
		"verbose":         "verbose",
		"format":          "format",
		"output":          "output",
		"failOnMalformed": "fail-on-malformed",
		"concurrency":     "concurrency",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

// loadConfig loads the configuration and a logger matching its verbosity.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return cfg, newLogger(cfg.Verbose), nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// emit formats the report and applies the exit policy.
func emit(cmd *cobra.Command, cfg *config.Config, report *output.Report) error {
	if err := outputters.NewOutputter(cfg, cmd.OutOrStdout()).Format(report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	counts := report.Counts()
	if counts.Failed > 0 {
		return fmt.Errorf("%d of %d entries could not be scored", counts.Failed, counts.Total)
	}
	if cfg.FailOnMalformed && counts.Malformed > 0 {
		return fmt.Errorf("%d malformed lines", counts.Malformed)
	}
	return nil
}
