package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/artscore/internal/artifact"
	"github.com/dotcommander/artscore/internal/output"
)

var (
	parseLevel  int
	parseType   string
	parseSet    string
	parseExport string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Score one OCR text block",
	Long: `Reads the OCR text of one artifact's substats from a file, or from stdin when
the argument is "-" or missing, and prints each substat with its roll quality,
the score and the tier.

Lines without a '+' or with an unreadable number are reported and skipped.`,
	Example: `  artscore parse shot.txt
  printf '会心率+3.9%%\n会心ダメージ+7.8%%\n' | artscore parse --profile HP
  artscore parse shot.txt --type flower --set PaleFlame --level 20 --export flower.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := "-"
		if len(args) == 1 {
			source = args[0]
		}
		return runParse(cmd, source)
	},
}

func init() {
	parseCmd.Flags().IntVar(&parseLevel, "level", 0, "Artifact level (0-20)")
	parseCmd.Flags().StringVar(&parseType, "type", "", "Artifact slot (flower|plume|sands|goblet|circlet)")
	parseCmd.Flags().StringVar(&parseSet, "set", "", "Artifact set id, e.g. EmblemOfSeveredFate")
	parseCmd.Flags().StringVar(&parseExport, "export", "", "Write the scored record to a .json or .yaml file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, source string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	text, name, err := readSource(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}

	parser, err := cfg.Parser()
	if err != nil {
		return err
	}
	subs, malformed := parser.Parse(text)
	logger.Debug("parsed block", "source", name, "substats", len(subs), "malformed", len(malformed))

	art, err := artifact.New(time.Now(), subs, artifact.Options{
		Level:   parseLevel,
		Type:    artifact.TypeID(parseType),
		Set:     artifact.SetID(parseSet),
		Profile: cfg.ScoringProfile(),
	})
	if err != nil {
		return err
	}

	if parseExport != "" {
		if err := exportArtifacts(parseExport, []artifact.Artifact{art}); err != nil {
			return err
		}
		logger.Info("exported record", "id", art.ID, "path", parseExport)
	}

	report := &output.Report{
		Profile: cfg.ScoringProfile(),
		Entries: []output.Entry{{
			Source:    name,
			Artifact:  &art,
			Result:    art.Evaluate(),
			Malformed: malformed,
		}},
	}
	return emit(cmd, cfg, report)
}

// readSource reads a file, or stdin for "-".
func readSource(stdin io.Reader, source string) (text, name string, err error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", source, err)
	}
	return string(data), source, nil
}

// exportArtifacts writes records as YAML for .yaml/.yml paths and JSON otherwise.
// A single record is written as an object, several as a list.
func exportArtifacts(path string, arts []artifact.Artifact) error {
	var doc any = arts
	if len(arts) == 1 {
		doc = arts[0]
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error encoding records: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
