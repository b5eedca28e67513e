// Package output renders scoring reports for the console, JSON and Markdown.
package output

import (
	"time"

	"github.com/dotcommander/artscore/internal/artifact"
	"github.com/dotcommander/artscore/internal/scoring"
	"github.com/dotcommander/artscore/internal/substat"
)

const (
	toolName    = "artscore"
	toolVersion = "1.0.0"
)

// Entry is one scored OCR block or imported record.
type Entry struct {
	Source    string
	Artifact  *artifact.Artifact
	Result    scoring.Result
	Malformed []*substat.MalformedLineError
	Err       error
}

// Failed reports whether the entry could not be scored at all.
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Clean reports whether the entry was scored with no malformed lines.
func (e Entry) Clean() bool {
	return e.Err == nil && len(e.Malformed) == 0
}

// Report is everything a formatter prints.
type Report struct {
	Profile   scoring.Profile
	StartTime time.Time
	Entries   []Entry
}

// Counts tallies a report.
type Counts struct {
	Total     int
	Scored    int
	Failed    int
	Malformed int
}

// Counts returns the report tallies. Malformed counts lines, not entries.
func (r *Report) Counts() Counts {
	c := Counts{Total: len(r.Entries)}
	for _, e := range r.Entries {
		if e.Failed() {
			c.Failed++
			continue
		}
		c.Scored++
		c.Malformed += len(e.Malformed)
	}
	return c
}
