// Package fix resolves overlapping textual edits attached to issues and
// applies the surviving ones end-to-start.
package fix

import (
	"sort"

	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/sourceview"
)

// AppliedFix records one edit that was applied.
type AppliedFix struct {
	RuleID      string
	Description string
	Range       sourceview.Range
}

// SkippedFix records one edit that was not applied, and why.
type SkippedFix struct {
	RuleID      string
	Description string
	Range       sourceview.Range
	Reason      string
}

// FileFixResult is the outcome of applying a set of issues' fixes to a
// file's original source.
type FileFixResult struct {
	Text    string
	Applied []AppliedFix
	Skipped []SkippedFix
}

type candidate struct {
	issue       issue.Issue
	start, end  int
}

// Apply computes byte offsets for each issue's fix against source, resolves
// overlaps, and applies the surviving edits end-to-start so earlier offsets
// stay valid.
func Apply(source string, issues []issue.Issue) FileFixResult {
	sv := sourceview.New(source)

	var candidates []candidate
	var skipped []SkippedFix

	for _, it := range issues {
		if it.Fix == nil {
			continue
		}
		f := *it.Fix
		if !f.Range.Valid() {
			skipped = append(skipped, SkippedFix{RuleID: it.RuleID, Description: f.Description, Range: f.Range, Reason: "invalid range"})
			continue
		}
		start, end, ok := sv.RangeOffsets(f.Range)
		if !ok {
			skipped = append(skipped, SkippedFix{RuleID: it.RuleID, Description: f.Description, Range: f.Range, Reason: "range outside source"})
			continue
		}
		candidates = append(candidates, candidate{issue: it, start: start, end: end})
	}

	// Sort by (start desc, end desc): the Open Question resolution in
	// DESIGN.md — when two fixes share a start offset, the larger end offset
	// (the one covering more source) wins, for determinism independent of
	// insertion order
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start > candidates[j].start
		}
		return candidates[i].end > candidates[j].end
	})

	text := source
	var accepted []candidate

	for _, c := range candidates {
		overlaps := false
		for _, a := range accepted {
			if rangesOverlap(c.start, c.end, a.start, a.end) {
				overlaps = true
				break
			}
		}
		if overlaps {
			skipped = append(skipped, SkippedFix{
				RuleID:      c.issue.RuleID,
				Description: c.issue.Fix.Description,
				Range:       c.issue.Fix.Range,
				Reason:      "overlapping",
			})
			continue
		}
		accepted = append(accepted, c)
	}

	// accepted is already sorted start-desc, end-desc (stable sort preserved
	// candidates' relative order, and we only filtered); apply end-to-start.
	var applied []AppliedFix
	for _, c := range accepted {
		text = text[:c.start] + c.issue.Fix.Text + text[c.end:]
		applied = append(applied, AppliedFix{
			RuleID:      c.issue.RuleID,
			Description: c.issue.Fix.Description,
			Range:       c.issue.Fix.Range,
		})
	}

	return FileFixResult{Text: text, Applied: applied, Skipped: skipped}
}

// rangesOverlap reports whether [aStart,aEnd) and [bStart,bEnd) share any
// byte, including full containment.
func rangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
