// Package artifact models a scored artifact record and the collection view over it.
package artifact

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dotcommander/artscore/internal/scoring"
	"github.com/dotcommander/artscore/internal/substat"
)

// All matches every type or set in Filter.
const All = "ALL"

// MaxLevel is the highest upgrade level of a 5-star artifact.
const MaxLevel = 20

// Artifact is one scored artifact.
type Artifact struct {
	ID       string            `json:"id" yaml:"id"`
	Level    int               `json:"level" yaml:"level"`
	Type     TypeID            `json:"type,omitempty" yaml:"type,omitempty"`
	Set      SetID             `json:"set,omitempty" yaml:"set,omitempty"`
	Profile  scoring.Profile   `json:"profile" yaml:"profile"`
	Score    float64           `json:"score" yaml:"score"`
	Tier     string            `json:"tier" yaml:"tier"`
	SubStats []substat.Substat `json:"subStats" yaml:"subStats"`
}

// Options describes the parts of an artifact that do not come from OCR.
// Type and Set may be empty when unknown.
type Options struct {
	Level   int
	Type    TypeID
	Set     SetID
	Profile scoring.Profile
}

// NewID returns the lower-case hex of now in Unix milliseconds.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 16)
}

// New builds a scored artifact from parsed substats.
func New(now time.Time, subs []substat.Substat, opts Options) (Artifact, error) {
	if err := opts.validate(); err != nil {
		return Artifact{}, err
	}

	// Exports must carry a list even when nothing was parsed.
	if subs == nil {
		subs = []substat.Substat{}
	}

	a := Artifact{
		ID:       NewID(now),
		Level:    opts.Level,
		Type:     opts.Type,
		Set:      opts.Set,
		SubStats: subs,
	}
	return a.Rescore(opts.Profile), nil
}

func (o Options) validate() error {
	if o.Level < 0 || o.Level > MaxLevel {
		return fmt.Errorf("level %d out of range 0-%d", o.Level, MaxLevel)
	}
	if o.Type != "" && !ValidType(o.Type) {
		return fmt.Errorf("unknown artifact type %q", o.Type)
	}
	if o.Set != "" && !ValidSet(o.Set) {
		return fmt.Errorf("unknown artifact set %q", o.Set)
	}
	return nil
}

// Rescore returns a copy of a scored under p.
func (a Artifact) Rescore(p scoring.Profile) Artifact {
	res := scoring.Evaluate(a.SubStats, p)
	a.Profile = p
	a.Score = res.Score
	a.Tier = res.Tier
	return a
}

// Evaluate returns the full breakdown of a under its profile.
func (a Artifact) Evaluate() scoring.Result {
	return scoring.Evaluate(a.SubStats, a.Profile)
}

// Filter keeps the artifacts matching typeID and setID. Either may be All.
func Filter(arts []Artifact, typeID, setID string) []Artifact {
	if typeID == All && setID == All {
		return arts
	}

	var out []Artifact
	for _, a := range arts {
		if typeID != All && string(a.Type) != typeID {
			continue
		}
		if setID != All && string(a.Set) != setID {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SetIDs returns the distinct sets of arts in first-seen order.
func SetIDs(arts []Artifact) []SetID {
	seen := make(map[SetID]bool)
	var ids []SetID
	for _, a := range arts {
		if a.Set == "" || seen[a.Set] {
			continue
		}
		seen[a.Set] = true
		ids = append(ids, a.Set)
	}
	return ids
}
