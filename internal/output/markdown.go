package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/artscore/internal/artifact"
	"github.com/dotcommander/artscore/internal/scoring"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
	out        io.Writer
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(verbose bool, outputFile string, out io.Writer) *MarkdownFormatter {
	if out == nil {
		out = os.Stdout
	}
	return &MarkdownFormatter{
		verbose:    verbose,
		outputFile: outputFile,
		out:        out,
	}
}

// Format formats the report as Markdown
func (f *MarkdownFormatter) Format(r *Report) error {
	var b strings.Builder
	counts := r.Counts()

	b.WriteString("# Artifact Score Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Profile:** %s\n\n", r.Profile))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Entries | %d |\n", counts.Total))
	b.WriteString(fmt.Sprintf("| Scored | %d |\n", counts.Scored))
	b.WriteString(fmt.Sprintf("| Failed | %d |\n", counts.Failed))
	b.WriteString(fmt.Sprintf("| Malformed lines | %d |\n", counts.Malformed))
	b.WriteString("\n")

	if len(r.Entries) > 1 {
		s := Summarize(r)
		b.WriteString("| Tier | Range | Count |\n")
		b.WriteString("|------|-------|-------|\n")
		for _, t := range scoring.Tiers {
			b.WriteString(fmt.Sprintf("| %s | %s | %d |\n", t, tierRange(t), s.TierCounts[t]))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Results\n\n")
	if len(r.Entries) == 0 {
		b.WriteString("*No entries found.*\n")
	}
	for _, e := range r.Entries {
		f.writeEntry(&b, e)
	}

	return writeOutput(f.outputFile, f.out, []byte(b.String()))
}

func (f *MarkdownFormatter) writeEntry(b *strings.Builder, e Entry) {
	b.WriteString(fmt.Sprintf("### %s\n\n", escapeMarkdown(e.Source)))

	if e.Failed() {
		b.WriteString(fmt.Sprintf("**Error:** %s\n\n", escapeMarkdown(e.Err.Error())))
		return
	}

	if a := e.Artifact; a != nil {
		var meta []string
		if a.Type != "" {
			meta = append(meta, artifact.TypeName(a.Type))
		}
		if a.Set != "" {
			meta = append(meta, artifact.SetName(a.Set))
		}
		meta = append(meta, fmt.Sprintf("+%d", a.Level))
		if f.verbose {
			meta = append(meta, "`"+a.ID+"`")
		}
		b.WriteString(strings.Join(meta, " · ") + "\n\n")
	}

	b.WriteString(fmt.Sprintf("**Score:** %.1f (tier **%s**)\n\n", e.Result.Score, e.Result.Tier))

	if len(e.Result.Contributions) > 0 {
		b.WriteString("| Substat | Type | Points | Roll quality |\n")
		b.WriteString("|---------|------|--------|--------------|\n")
		for _, c := range e.Result.Contributions {
			quality := "-"
			if c.Detected {
				quality = fmt.Sprintf("%.1f%%", c.RollQuality)
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %.1f | %s |\n", escapeMarkdown(c.Label), c.Type, c.Points, quality))
		}
		b.WriteString("\n")
	}

	if len(e.Malformed) > 0 {
		b.WriteString("**Malformed lines:**\n\n")
		for _, m := range e.Malformed {
			b.WriteString(fmt.Sprintf("- line %d `%s`: %s\n", m.Line, m.Text, m.Err))
		}
		b.WriteString("\n")
	}
}

// escapeMarkdown escapes table separators
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
