// Package address splits delimited address text into lines that fit a
// pixel width budget. It doesn't read files or measure text itself.
package address

import (
	"strings"

	"golang.org/x/image/math/fixed"
)

// DefaultDelimiter separates the components of an address.
const DefaultDelimiter = ", "

// MeasureFunc reports the rendered width of s in pixels for a fixed
// font and size. It must be deterministic.
type MeasureFunc func(s string) fixed.Int26_6

type Splitter struct {
	measure  MeasureFunc
	maxWidth fixed.Int26_6
	delim    string
}

func NewSplitter(measure MeasureFunc, maxWidth fixed.Int26_6) *Splitter {
	return &Splitter{
		measure:  measure,
		maxWidth: maxWidth,
		delim:    DefaultDelimiter,
	}
}

// SetDelimiter changes the component delimiter from the default ", ".
func (s *Splitter) SetDelimiter(delim string) {
	if delim != "" {
		s.delim = delim
	}
}

// Split breaks text into lines at delimiter boundaries so that each line
// fits within the width budget. A single component wider than the budget
// is never divided; it becomes a line of its own. Candidate lines are
// measured with their trailing delimiter still attached, so finished
// lines come in slightly under budget.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{text}
	}

	parts := strings.Split(text, s.delim)

	var lines []string
	current := ""

	for i, part := range parts {
		addition := part
		if i < len(parts)-1 {
			addition += s.delim
		}

		candidate := current + addition
		if s.measure(candidate) <= s.maxWidth || current == "" {
			current = candidate
			continue
		}

		lines = append(lines, trimLine(current, s.delim))
		current = addition
	}

	if current != "" {
		lines = append(lines, trimLine(current, s.delim))
	}

	if len(lines) == 0 {
		return []string{text}
	}
	return lines
}

func trimLine(line, delim string) string {
	return strings.TrimRight(line, delim+" ")
}

// TransformRecord returns a copy of rec with the field at col replaced by
// its split form, lines joined with newlines. The second return value
// reports whether the field actually changed. A record too short to have
// field col is returned as-is; that is a pass-through, not an error.
func (s *Splitter) TransformRecord(rec []string, col int) ([]string, bool) {
	if col < 0 || col >= len(rec) {
		return rec, false
	}

	out := make([]string, len(rec))
	copy(out, rec)

	joined := strings.Join(s.Split(rec[col]), "\n")
	if joined == rec[col] {
		return out, false
	}

	out[col] = joined
	return out, true
}
