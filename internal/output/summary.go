package output

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dotcommander/artscore/internal/scoring"
	"github.com/dotcommander/artscore/internal/substat"
)

// Summary aggregates a multi-entry report.
type Summary struct {
	Total      int
	TierCounts map[string]int
	TopIssues  map[string]int
	Lowest     []ScoredEntry
	Best       *ScoredEntry
}

// ScoredEntry is an entry with its score for sorting.
type ScoredEntry struct {
	Source string
	Score  float64
	Tier   string
}

// Summarize builds the summary of r. Lowest is sorted ascending by score,
// ties broken by source.
func Summarize(r *Report) Summary {
	s := Summary{
		TierCounts: make(map[string]int),
		TopIssues:  make(map[string]int),
	}

	for _, e := range r.Entries {
		if e.Failed() {
			s.TopIssues["Unreadable file"]++
			continue
		}
		s.Total++
		s.TierCounts[e.Result.Tier]++
		s.Lowest = append(s.Lowest, ScoredEntry{
			Source: e.Source,
			Score:  e.Result.Score,
			Tier:   e.Result.Tier,
		})

		for _, m := range e.Malformed {
			s.TopIssues[categorizeIssue(m)]++
		}
		for _, c := range e.Result.Contributions {
			if c.Type == substat.Undetected {
				s.TopIssues["Undetected substat"]++
			}
		}
	}

	sort.Slice(s.Lowest, func(i, j int) bool {
		if s.Lowest[i].Score != s.Lowest[j].Score {
			return s.Lowest[i].Score < s.Lowest[j].Score
		}
		return s.Lowest[i].Source < s.Lowest[j].Source
	})
	if n := len(s.Lowest); n > 0 {
		best := s.Lowest[n-1]
		s.Best = &best
	}

	return s
}

func categorizeIssue(err *substat.MalformedLineError) string {
	switch {
	case errors.Is(err, substat.ErrMissingSeparator):
		return "Missing '+' separator"
	case errors.Is(err, substat.ErrInvalidNumber):
		return "Unreadable number"
	default:
		return "Other issues"
	}
}

type issueCount struct {
	issue string
	count int
}

// sortedIssues orders issues by count, then name.
func sortedIssues(issues map[string]int) []issueCount {
	var out []issueCount
	for issue, count := range issues {
		out = append(out, issueCount{issue, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].issue < out[j].issue
	})
	return out
}

// tierRange describes a tier's score range for display.
func tierRange(tier string) string {
	switch tier {
	case "SS":
		return fmt.Sprintf("%d+", scoring.TierSSMin)
	case "S":
		return fmt.Sprintf("%d-%d", scoring.TierSMin, scoring.TierSSMin)
	case "A":
		return fmt.Sprintf("%d-%d", scoring.TierAMin, scoring.TierSMin)
	default:
		return fmt.Sprintf("<%d", scoring.TierAMin)
	}
}
