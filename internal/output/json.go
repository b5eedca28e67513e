package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/artscore/internal/scoring"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	indent     bool
	outputFile string
	out        io.Writer
}

// NewJSONFormatter creates a new JSONFormatter. When outputFile is empty the
// report goes to out, or stdout when out is nil.
func NewJSONFormatter(indent bool, outputFile string, out io.Writer) *JSONFormatter {
	if out == nil {
		out = os.Stdout
	}
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
		out:        out,
	}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Profile   string `json:"profile"`
}

// JSONSummary contains summary statistics
type JSONSummary struct {
	Total      int            `json:"total"`
	Scored     int            `json:"scored"`
	Failed     int            `json:"failed"`
	Malformed  int            `json:"malformed_lines"`
	TierCounts map[string]int `json:"tier_counts"`
	Duration   string         `json:"duration,omitempty"`
}

// JSONResult is one entry of the report
type JSONResult struct {
	Source    string          `json:"source"`
	ID        string          `json:"id,omitempty"`
	Level     *int            `json:"level,omitempty"`
	Type      string          `json:"type,omitempty"`
	Set       string          `json:"set,omitempty"`
	Score     float64         `json:"score"`
	Tier      string          `json:"tier,omitempty"`
	SubStats  []JSONSubstat   `json:"substats,omitempty"`
	Malformed []JSONMalformed `json:"malformed,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// JSONSubstat is one substat with its share of the score
type JSONSubstat struct {
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Value       float64  `json:"value"`
	Points      float64  `json:"points"`
	RollQuality *float64 `json:"roll_quality,omitempty"`
}

// JSONMalformed is a line that could not be parsed
type JSONMalformed struct {
	Line    int    `json:"line"`
	Text    string `json:"text"`
	Message string `json:"message"`
}

// Format formats the report as JSON
func (f *JSONFormatter) Format(r *Report) error {
	counts := r.Counts()
	summary := Summarize(r)

	report := JSONReport{
		Header: JSONHeader{
			Tool:      toolName,
			Version:   toolVersion,
			Timestamp: time.Now().Format(time.RFC3339),
			Profile:   string(r.Profile),
		},
		Summary: JSONSummary{
			Total:      counts.Total,
			Scored:     counts.Scored,
			Failed:     counts.Failed,
			Malformed:  counts.Malformed,
			TierCounts: summary.TierCounts,
		},
		Results: make([]JSONResult, 0, len(r.Entries)),
	}
	if !r.StartTime.IsZero() {
		report.Summary.Duration = time.Since(r.StartTime).Round(time.Millisecond).String()
	}

	for _, e := range r.Entries {
		report.Results = append(report.Results, toJSONResult(e))
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	return writeOutput(f.outputFile, f.out, jsonBytes)
}

func toJSONResult(e Entry) JSONResult {
	res := JSONResult{Source: e.Source}
	if e.Failed() {
		res.Error = e.Err.Error()
		return res
	}

	if a := e.Artifact; a != nil {
		level := a.Level
		res.ID = a.ID
		res.Level = &level
		res.Type = string(a.Type)
		res.Set = string(a.Set)
	}

	res.Score = scoring.Round1(e.Result.Score)
	res.Tier = e.Result.Tier
	for _, c := range e.Result.Contributions {
		js := JSONSubstat{
			Label:  c.Label,
			Type:   string(c.Type),
			Value:  c.Value,
			Points: c.Points,
		}
		if c.Detected {
			q := c.RollQuality
			js.RollQuality = &q
		}
		res.SubStats = append(res.SubStats, js)
	}
	for _, m := range e.Malformed {
		res.Malformed = append(res.Malformed, JSONMalformed{
			Line:    m.Line,
			Text:    m.Text,
			Message: m.Err.Error(),
		})
	}
	return res
}

// writeOutput writes data to path, or to out followed by a newline when path is empty.
func writeOutput(path string, out io.Writer, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", path, err)
		}
		return nil
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
