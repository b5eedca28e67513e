package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/artscore/internal/artifact"
	"github.com/dotcommander/artscore/internal/scoring"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
	out      io.Writer
	styles   printStyles
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to out, or
// stdout when out is nil.
func NewConsoleFormatter(quiet, verbose bool, out io.Writer) *ConsoleFormatter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
		out:      out,
		styles:   newPrintStyles(),
	}
}

// printStyles holds all the styles used in console reports.
type printStyles struct {
	header lipgloss.Style
	ok     lipgloss.Style
	bad    lipgloss.Style
	dim    lipgloss.Style
	tiers  map[string]lipgloss.Style
}

func newPrintStyles() printStyles {
	return printStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		tiers: map[string]lipgloss.Style{
			"SS": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			"S":  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			"A":  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			"B":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		},
	}
}

func (f *ConsoleFormatter) render(style lipgloss.Style, s string) string {
	if !f.colorize {
		return s
	}
	return style.Render(s)
}

func (f *ConsoleFormatter) tier(t string) string {
	return f.render(f.styles.tiers[t], t)
}

// pad pads s to width display cells; CJK labels count double.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Format prints the report. In quiet mode only one line per entry is printed.
func (f *ConsoleFormatter) Format(r *Report) error {
	if f.quiet {
		for _, e := range r.Entries {
			if e.Failed() {
				fmt.Fprintf(f.out, "%s\terror\t%v\n", e.Source, e.Err)
				continue
			}
			fmt.Fprintf(f.out, "%s\t%.1f\t%s\n", e.Source, e.Result.Score, e.Result.Tier)
		}
		return nil
	}

	for i, e := range r.Entries {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		f.printEntry(e)
	}

	if len(r.Entries) > 1 {
		f.printSummary(r)
	}
	return nil
}

func (f *ConsoleFormatter) printEntry(e Entry) {
	if e.Failed() {
		fmt.Fprintf(f.out, "%s %s: %v\n", f.render(f.styles.bad, "✗"), e.Source, e.Err)
		return
	}

	status := f.render(f.styles.bad, "✗")
	if e.Clean() {
		status = f.render(f.styles.ok, "✓")
	}
	fmt.Fprintf(f.out, "%s %s%s\n", status, e.Source, f.describeArtifact(e.Artifact))

	for _, c := range e.Result.Contributions {
		quality := "    -"
		if c.Detected {
			quality = fmt.Sprintf("%5.1f%%", c.RollQuality)
		}
		line := fmt.Sprintf("    %s %s %6.1f  %s", pad(c.Label, 26), pad(string(c.Type), 18), c.Points, quality)
		if !c.Counted() {
			line = f.render(f.styles.dim, line)
		}
		fmt.Fprintln(f.out, line)
	}

	for _, m := range e.Malformed {
		fmt.Fprintf(f.out, "    %s line %d: %q: %v\n", f.render(f.styles.bad, "✘"), m.Line, m.Text, m.Err)
	}

	fmt.Fprintf(f.out, "    Score %.1f  Tier %s  %s\n",
		e.Result.Score, f.tier(e.Result.Tier), f.render(f.styles.dim, "("+string(e.Result.Profile)+")"))
}

func (f *ConsoleFormatter) describeArtifact(a *artifact.Artifact) string {
	if a == nil {
		return ""
	}
	var parts []string
	if a.Type != "" {
		parts = append(parts, artifact.TypeName(a.Type))
	}
	if a.Set != "" {
		parts = append(parts, artifact.SetName(a.Set))
	}
	parts = append(parts, fmt.Sprintf("+%d", a.Level))
	if f.verbose && a.ID != "" {
		parts = append(parts, a.ID)
	}
	return f.render(f.styles.dim, "  "+strings.Join(parts, " · "))
}

func (f *ConsoleFormatter) printSummary(r *Report) {
	s := Summarize(r)
	counts := r.Counts()

	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, f.render(f.styles.header, "TIER DISTRIBUTION"))
	total := s.Total
	for _, t := range scoring.Tiers {
		n := s.TierCounts[t]
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		fmt.Fprintf(f.out, "  %s %-7s %4d (%5.1f%%)  %s\n",
			pad(f.tier(t), 2), tierRange(t), n, pct, f.renderBar(n, total, t))
	}

	if issues := sortedIssues(s.TopIssues); len(issues) > 0 {
		fmt.Fprintln(f.out, f.render(f.styles.header, "TOP ISSUES"))
		for i, ic := range issues {
			if i >= 5 {
				break
			}
			fmt.Fprintf(f.out, "  %s %-32s %3d\n", f.render(f.styles.dim, fmt.Sprintf("%d.", i+1)), ic.issue, ic.count)
		}
	}

	if len(s.Lowest) > 0 {
		fmt.Fprintln(f.out, f.render(f.styles.header, "LOWEST SCORING"))
		for i, se := range s.Lowest {
			if i >= 5 {
				break
			}
			fmt.Fprintf(f.out, "  %s %s %5.1f %s\n",
				f.render(f.styles.dim, fmt.Sprintf("%d.", i+1)), pad(truncate(se.Source, 40), 40), se.Score, f.tier(se.Tier))
		}
	}

	if s.Best != nil {
		fmt.Fprintf(f.out, "%s %s %5.1f %s\n",
			f.render(f.styles.header, "BEST"), truncate(s.Best.Source, 40), s.Best.Score, f.tier(s.Best.Tier))
	}

	duration := ""
	if !r.StartTime.IsZero() {
		duration = fmt.Sprintf(" (%v)", time.Since(r.StartTime).Round(time.Millisecond))
	}
	fmt.Fprintf(f.out, "\n%d scored, %d failed, %d malformed lines%s\n",
		counts.Scored, counts.Failed, counts.Malformed, duration)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width("..."+string(runes)) > width {
		runes = runes[1:]
	}
	return "..." + string(runes)
}

func (f *ConsoleFormatter) renderBar(count, total int, tier string) string {
	if total == 0 {
		return ""
	}
	barWidth := 10
	filled := (count * barWidth) / total
	if count > 0 && filled == 0 {
		filled = 1
	}
	return f.render(f.styles.tiers[tier], strings.Repeat("█", filled)) +
		f.render(f.styles.dim, strings.Repeat("░", barWidth-filled))
}
