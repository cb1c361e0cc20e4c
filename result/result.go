// Package result defines the per-file and aggregate analysis outputs
// consumed by external formatters and cached by package cache.
package result

import (
	"time"

	"github.com/solguard/solguard/issue"
)

// PerFileResult is the outcome of analyzing a single file.
type PerFileResult struct {
	FilePath    string
	Duration    time.Duration
	ParseErrors []string
	Issues      []issue.Issue
}

// HasParseErrors reports whether parsing failed for this file.
func (r PerFileResult) HasParseErrors() bool { return len(r.ParseErrors) > 0 }

// Summary is severity counts across an AggregateResult.
type Summary struct {
	Errors   int
	Warnings int
	Info     int
}

// AggregateResult is the output of analyzing a set of files
//
type AggregateResult struct {
	Files          []PerFileResult
	TotalIssues    int
	Summary        Summary
	Duration       time.Duration
	HasParseErrors bool
}

// Aggregate builds an AggregateResult from per-file results already in
// resolved-path order. duration is the wall-clock time for the whole run.
func Aggregate(files []PerFileResult, duration time.Duration) AggregateResult {
	agg := AggregateResult{Files: files, Duration: duration}
	for _, f := range files {
		agg.TotalIssues += len(f.Issues)
		if f.HasParseErrors() {
			agg.HasParseErrors = true
		}
		for _, it := range f.Issues {
			switch it.Severity {
			case issue.Error:
				agg.Summary.Errors++
			case issue.Warning:
				agg.Summary.Warnings++
			case issue.Info:
				agg.Summary.Info++
			}
		}
	}
	return agg
}

// ExitCode computes the CLI exit-code convention:
// 0 = success, 1 = findings present at ERROR severity, 2 = invalid usage or
// parse-errors-only state.
func (agg AggregateResult) ExitCode() int {
	if agg.Summary.Errors > 0 {
		return 1
	}
	if agg.HasParseErrors {
		return 2
	}
	return 0
}
