// Package engine orchestrates parsing, rule dispatch, per-file aggregation,
// cache integration, and progress reporting.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/solguard/solguard/cache"
	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/internal/errs"
	"github.com/solguard/solguard/internal/metrics"
	"github.com/solguard/solguard/internal/xlog"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/parser"
	"github.com/solguard/solguard/result"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/sourceview"
)

// Version identifies this build of the engine; it is folded into every
// cache fingerprint, so bumping it invalidates all prior cache entries
//
const Version cache.EngineVersion = "solguard-engine/1"

// Engine orchestrates analysis runs against an immutable rule.Registry
//
type Engine struct {
	registry *rule.Registry
	parser   parser.Parser
	cache    cache.Store
	log      xlog.Logger
}

// New returns an Engine bound to reg and p. store may be nil, in which case
// caching is skipped entirely (every file is a forced miss). log may be nil.
func New(reg *rule.Registry, p parser.Parser, store cache.Store, log xlog.Logger) *Engine {
	return &Engine{registry: reg, parser: p, cache: store, log: xlog.OrNoOp(log)}
}

// Options configures a single Analyze call.
type Options struct {
	MaxConcurrency int
	OnProgress     func(current, total int)
}

// Analyze runs the registry's rules against every file in files, in
// resolved-path order regardless of completion order.
func (e *Engine) Analyze(ctx context.Context, files []string, cfg config.Effective, opts Options) (*result.AggregateResult, error) {
	start := time.Now()

	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	concurrency := opts.MaxConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]result.PerFileResult, len(sorted))
	errCh := make(chan error, 1)
	sem := make(chan struct{}, concurrency)
	done := make(chan int, len(sorted))

	var cancelled bool

	for i, path := range sorted {
		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			results[i] = result.PerFileResult{FilePath: path, ParseErrors: []string{"analysis cancelled"}}
			done <- i
			continue
		}

		sem <- struct{}{}
		go func(idx int, p string) {
			defer func() { <-sem }()
			res, err := e.AnalyzeFile(ctx, p, cfg)
			if err != nil {
				select {
				case errCh <- err:
				default:
				}
				results[idx] = result.PerFileResult{FilePath: p, ParseErrors: []string{err.Error()}}
			} else {
				results[idx] = *res
			}
			done <- idx
		}(i, path)
	}

	completed := 0
	for completed < len(sorted) {
		<-done
		completed++
		if opts.OnProgress != nil {
			opts.OnProgress(completed, len(sorted))
		}
	}

	agg := result.Aggregate(results, time.Since(start))
	return &agg, nil
}

// AnalyzeFile runs the per-file protocol for a single file: cache probe,
// parse, per-rule analyze in registry order, collect+sort issues, cache
// store.
func (e *Engine) AnalyzeFile(ctx context.Context, path string, cfg config.Effective) (*result.PerFileResult, error) {
	timer := time.Now()
	defer func() { metrics.AnalyzeTime.Observe(time.Since(timer).Seconds()) }()

	source, err := os.ReadFile(path)
	if err != nil {
		metrics.ParseErrors.Inc()
		return &result.PerFileResult{FilePath: path, ParseErrors: []string{(&errs.IOError{FilePath: path, Err: err}).Error()}}, nil
	}

	sig := ruleSetSignature(e.registry)
	csig := configSignature(cfg)
	fp := cache.Compute(source, sig, csig, Version)

	compute := func() (result.PerFileResult, error) {
		return e.analyzeUncached(path, source, cfg)
	}

	var res result.PerFileResult
	var hit bool
	if e.cache != nil {
		res, hit, err = e.cache.GetOrCompute(fp, compute)
		if err != nil {
			return nil, err
		}
	} else {
		res, err = compute()
		if err != nil {
			return nil, err
		}
	}

	if hit {
		metrics.CacheHits.Inc()
	} else {
		metrics.CacheMisses.Inc()
	}
	metrics.FilesAnalyzed.Inc()

	_ = ctx // cancellation is checked between files in Analyze; AnalyzeFile itself runs to completion once started
	return &res, nil
}

func (e *Engine) analyzeUncached(path string, source []byte, cfg config.Effective) (result.PerFileResult, error) {
	parsed, err := e.parser.Parse(string(source), parser.Options{Tolerant: true, WithLocations: true})
	if err != nil {
		metrics.ParseErrors.Inc()
		return result.PerFileResult{FilePath: path, ParseErrors: []string{err.Error()}}, nil
	}
	if len(parsed.Errors) > 0 && parsed.Root == nil {
		metrics.ParseErrors.Inc()
		return result.PerFileResult{FilePath: path, ParseErrors: parsed.Errors}, nil
	}

	sv := sourceview.New(string(source))
	ctxForRules := rule.NewContext(path, sv, parsed.Root, cfg)

	for _, r := range e.registry.All() {
		meta := r.Metadata()
		entry := cfg.RuleEntry(meta.ID)
		if entry.Severity == config.Off {
			continue
		}

		ctxForRules.BindRule(meta.ID)
		if err := e.runRuleSafely(r, ctxForRules); err != nil {
			metrics.RuleErrors.Inc()
			e.log.WithField("rule", meta.ID).Warnf("rule failed: %v", err)
			ctxForRules.ReportInternal(issue.Draft{
				RuleID:   "engine/internal-rule-error",
				Category: issue.Lint,
				Severity: issue.Warning,
				Message:  fmt.Sprintf("INTERNAL_RULE_ERROR: rule %q failed: %v", meta.ID, err),
				Location: sourceview.Range{Start: sourceview.Position{Line: 1, Column: 0}, End: sourceview.Position{Line: 1, Column: 0}},
			})
		}
		ctxForRules.Close()
	}

	drafts := ctxForRules.Issues()
	issues := make([]issue.Issue, 0, len(drafts))
	for _, d := range drafts {
		sev := d.Severity
		if entry := cfg.RuleEntry(d.RuleID); entry.Severity != "" && d.RuleID != "engine/internal-rule-error" {
			sev = issue.Severity(entry.Severity)
		}
		issues = append(issues, issue.Issue{
			FilePath: path,
			RuleID:   d.RuleID,
			Category: d.Category,
			Severity: sev,
			Message:  d.Message,
			Location: d.Location,
			Fix:      d.Fix,
			Metadata: d.Metadata,
		})
	}
	issues = issue.Dedup(issues)
	issue.Sort(issues)

	return result.PerFileResult{FilePath: path, Issues: issues, ParseErrors: parsed.Errors}, nil
}

// runRuleSafely invokes r.Analyze, converting a panic into an error so one
// misbehaving rule never aborts the engine
func (e *Engine) runRuleSafely(r rule.Rule, ctx *rule.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &errs.RuleError{RuleID: r.Metadata().ID, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()
	if analyzeErr := r.Analyze(ctx); analyzeErr != nil {
		return &errs.RuleError{RuleID: r.Metadata().ID, Err: analyzeErr}
	}
	return nil
}

func ruleSetSignature(reg *rule.Registry) cache.RuleSetSignature {
	var parts []string
	for _, r := range reg.All() {
		m := r.Metadata()
		parts = append(parts, m.ID+"@"+m.Severity)
	}
	return cache.RuleSetSignature(strings.Join(parts, ","))
}

func configSignature(cfg config.Effective) cache.ConfigSignature {
	ids := make([]string, 0, len(cfg.Rules))
	for id := range cfg.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bs, err := json.Marshal(struct {
		BasePath string
		Rules    []string
	}{cfg.BasePath, ids})
	if err != nil {
		return cache.ConfigSignature(cfg.BasePath)
	}

	// fold in the actual entries (severity+options) for each id in stable order
	type entryForSig struct {
		ID       string
		Severity config.Severity
		Options  config.Options
	}
	entries := make([]entryForSig, 0, len(ids))
	for _, id := range ids {
		e := cfg.Rules[id]
		entries = append(entries, entryForSig{ID: id, Severity: e.Severity, Options: e.Options})
	}
	withEntries, err := json.Marshal(entries)
	if err != nil {
		return cache.ConfigSignature(string(bs))
	}
	return cache.ConfigSignature(string(withEntries))
}

