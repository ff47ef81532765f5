// This file normalizes raw backend source records into Citations.
package session

import (
	"fmt"

	"policychat/internal/api"
)

// DefaultFilename is the display label used when a source record carries
// neither a filename nor a title.
const DefaultFilename = "Document"

// NormalizeSource converts a raw source record into a Citation. It is total:
// any input, including one with every field absent, produces a valid
// Citation. Scores are passed through, never synthesized.
func NormalizeSource(src api.Source) Citation {
	c := Citation{Filename: DefaultFilename}

	if src.Filename != "" {
		c.Filename = src.Filename
	} else if src.Title != "" {
		c.Filename = src.Title
	}

	page := src.PageNumber
	if page == nil {
		page = src.PageNumberAlt
	}
	if page != nil && *page > 0 {
		p := *page
		c.PageNumber = &p
	}

	score := src.RelevanceScore
	if score == nil {
		score = src.Score
	}
	if score != nil {
		s := *score
		c.RelevanceScore = &s
	}

	return c
}

// NormalizeSources converts a raw source list, returning an empty slice for
// an absent one.
func NormalizeSources(srcs []api.Source) []Citation {
	out := make([]Citation, 0, len(srcs))
	for _, src := range srcs {
		out = append(out, NormalizeSource(src))
	}
	return out
}

// FormatRelevance renders a relevance score in [0,1] as a percentage
// with one decimal, e.g. 0.87 -> "87.0%".
func FormatRelevance(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}
