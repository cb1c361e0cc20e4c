package sourceview

import "strings"

// View is a single-pass index over a file's source bytes giving bidirectional
// mapping between (line, column) positions and byte offsets, plus line-text
// access. Built once per file; the fix applicator and any rule that needs
// LineText share the same table rather than recomputing it.
type View struct {
	source      string
	lineOffsets []int // byte offset of the start of each line, 1-indexed via lineOffsets[line-1]
	lines       []string
}

// New builds a View over source. Lines are split on "\n"; a trailing "\r" is
// kept in the stored line, so it counts toward the column bounds Offset
// accepts, while LineText returns the line with it trimmed.
func New(source string) *View {
	v := &View{source: source}
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			v.lineOffsets = append(v.lineOffsets, start)
			v.lines = append(v.lines, source[start:i])
			start = i + 1
		}
	}
	v.lineOffsets = append(v.lineOffsets, start)
	v.lines = append(v.lines, source[start:])
	return v
}

// Source returns the original, unmodified source text.
func (v *View) Source() string { return v.source }

// LineCount returns the number of lines in the source.
func (v *View) LineCount() int { return len(v.lines) }

// LineText returns the text of the given 1-based line, without its trailing
// newline. ok is false if line is out of range.
func (v *View) LineText(line int) (text string, ok bool) {
	if line < 1 || line > len(v.lines) {
		return "", false
	}
	return strings.TrimSuffix(v.lines[line-1], "\r"), true
}

// Offset converts a Position to a byte offset into Source(). ok is false if
// the position falls outside the known lines or columns.
func (v *View) Offset(p Position) (offset int, ok bool) {
	if p.Line < 1 || p.Line > len(v.lineOffsets) {
		return 0, false
	}
	lineStart := v.lineOffsets[p.Line-1]
	lineLen := len(v.lines[p.Line-1])
	if p.Column < 0 || p.Column > lineLen {
		return 0, false
	}
	return lineStart + p.Column, true
}

// Position converts a byte offset into Source() back to a Position. Offsets
// past the end of the source clamp to the last valid position.
func (v *View) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	// binary search for the line containing offset
	lo, hi := 0, len(v.lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if v.lineOffsets[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line := lo
	col := offset - v.lineOffsets[line]
	if col > len(v.lines[line]) {
		col = len(v.lines[line])
	}
	if col < 0 {
		col = 0
	}
	return Position{Line: line + 1, Column: col}
}

// RangeOffsets converts a Range to [start, end) byte offsets. ok is false if
// either endpoint is out of range or the range is invalid (Start > End).
func (v *View) RangeOffsets(r Range) (start, end int, ok bool) {
	if !r.Valid() {
		return 0, 0, false
	}
	start, ok = v.Offset(r.Start)
	if !ok {
		return 0, 0, false
	}
	end, ok = v.Offset(r.End)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}
