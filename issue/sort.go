package issue

import "sort"

// Sort orders issues by (start.line, start.column, rule_id), the canonical
// order a per-file result is reported in.
func Sort(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Location.Start.Line != b.Location.Start.Line {
			return a.Location.Start.Line < b.Location.Start.Line
		}
		if a.Location.Start.Column != b.Location.Start.Column {
			return a.Location.Start.Column < b.Location.Start.Column
		}
		return a.RuleID < b.RuleID
	})
}

// Dedup removes issues that share (rule_id, location.start, location.end),
// keeping the first occurrence. Issues is assumed to already belong to a
// single file.
func Dedup(issues []Issue) []Issue {
	seen := make(map[Key]bool, len(issues))
	out := make([]Issue, 0, len(issues))
	for _, it := range issues {
		k := it.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}
