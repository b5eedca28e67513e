package outputters

import (
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/artscore/internal/config"
	"github.com/dotcommander/artscore/internal/output"
)

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
	out    io.Writer
}

// NewOutputter creates a new Outputter writing to out (stdout when nil)
func NewOutputter(config *config.Config, out io.Writer) *Outputter {
	return &Outputter{
		config: config,
		out:    out,
	}
}

// Format formats the report using the configured format
func (o *Outputter) Format(report *output.Report) error {
	if report.StartTime.IsZero() {
		report.StartTime = time.Now()
	}

	switch o.config.Format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose, o.out)
		return formatter.Format(report)
	case "json":
		formatter := output.NewJSONFormatter(true, o.config.Output, o.out)
		return formatter.Format(report)
	case "markdown":
		formatter := output.NewMarkdownFormatter(o.config.Verbose, o.config.Output, o.out)
		return formatter.Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
