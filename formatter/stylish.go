package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/result"
)

// Stylish groups issues by file and prints one line per issue, followed by
// a summary footer. It has no configuration and needs none constructed.
type Stylish struct{}

// Format implements Formatter.
func (Stylish) Format(agg *result.AggregateResult) (string, error) {
	var b strings.Builder

	for _, f := range agg.Files {
		if len(f.ParseErrors) == 0 && len(f.Issues) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s\n", f.FilePath)

		for _, pe := range f.ParseErrors {
			fmt.Fprintf(&b, "  parse error  %s\n", pe)
		}

		issues := make([]issue.Issue, len(f.Issues))
		copy(issues, f.Issues)
		sort.SliceStable(issues, func(i, j int) bool {
			li, lj := issues[i].Location, issues[j].Location
			if li.Start.Line != lj.Start.Line {
				return li.Start.Line < lj.Start.Line
			}
			return li.Start.Column < lj.Start.Column
		})

		for _, it := range issues {
			fmt.Fprintf(&b, "  %4d:%-3d  %-7s  %-28s  %s\n",
				it.Location.Start.Line, it.Location.Start.Column,
				severityLabel(it.Severity), it.RuleID, it.Message)
		}

		b.WriteString("\n")
	}

	writeSummary(&b, agg)

	return b.String(), nil
}

func severityLabel(s issue.Severity) string {
	switch s {
	case issue.Error:
		return "error"
	case issue.Warning:
		return "warn"
	case issue.Info:
		return "info"
	default:
		return strings.ToLower(string(s))
	}
}

func writeSummary(b *strings.Builder, agg *result.AggregateResult) {
	if agg.TotalIssues == 0 && !agg.HasParseErrors {
		b.WriteString("no issues found\n")
		return
	}

	fmt.Fprintf(b, "%d problem%s", agg.TotalIssues, plural(agg.TotalIssues))
	var parts []string
	if agg.Summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error%s", agg.Summary.Errors, plural(agg.Summary.Errors)))
	}
	if agg.Summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warning%s", agg.Summary.Warnings, plural(agg.Summary.Warnings)))
	}
	if agg.Summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", agg.Summary.Info))
	}
	if len(parts) > 0 {
		fmt.Fprintf(b, " (%s)", strings.Join(parts, ", "))
	}
	b.WriteString("\n")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
