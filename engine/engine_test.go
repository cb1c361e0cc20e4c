package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/cache"
	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/parser"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/sourceview"
)

// txOriginRule is a minimal stand-in for rules/security.TxOrigin, used so
// engine tests do not depend on the rules package (avoiding an import
// cycle risk and keeping engine tests focused on orchestration).
type txOriginRule struct{}

func (txOriginRule) Metadata() rule.Metadata {
	return rule.Metadata{ID: "security/tx-origin", Category: "SECURITY", Severity: "ERROR"}
}

func (txOriginRule) Analyze(ctx *rule.Context) error {
	var found *sourceview.Range
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if n.Type == "MemberAccess" {
				if name, _ := n.String("memberName"); name == "origin" {
					if base, ok := n.Child("expression"); ok {
						if baseName, _ := base.String("name"); baseName == "tx" {
							found = n.Loc
						}
					}
				}
			}
			return ast.Continue
		},
	})
	if found != nil {
		return ctx.Report(issue.Draft{
			Category: issue.Security,
			Severity: issue.Error,
			Message:  "avoid tx.origin for authorization",
			Location: *found,
		})
	}
	return nil
}

type panicRule struct{}

func (panicRule) Metadata() rule.Metadata {
	return rule.Metadata{ID: "security/panics", Category: "SECURITY", Severity: "ERROR"}
}

func (panicRule) Analyze(ctx *rule.Context) error {
	panic("boom")
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func newTestEngine(t *testing.T, reg *rule.Registry) (*Engine, *cache.LRUStore) {
	t.Helper()
	store, err := cache.NewLRUStore(100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(reg, parser.NewReference(), store, nil), store
}

func recommendedConfig() config.Effective {
	return config.Effective{Rules: map[string]config.RuleEntry{
		"security/tx-origin": {Severity: config.Error},
	}}
}

// TestTxOriginDetection covers a contract that compares tx.origin to msg.sender.
func TestTxOriginDetection(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "x.sol", "pragma solidity ^0.8.0;\ncontract X { function f() public { require(tx.origin == msg.sender); } }\n")

	reg := rule.NewRegistry()
	_ = reg.Register(txOriginRule{})
	e, _ := newTestEngine(t, reg)

	res, err := e.AnalyzeFile(context.Background(), path, recommendedConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Issues) != 1 {
		t.Fatalf("expected exactly 1 issue, got %d: %+v", len(res.Issues), res.Issues)
	}
	got := res.Issues[0]
	if got.RuleID != "security/tx-origin" || got.Severity != issue.Error {
		t.Fatalf("unexpected issue: %+v", got)
	}
	if got.Location.Start.Line != 2 {
		t.Fatalf("expected issue on line 2, got line %d", got.Location.Start.Line)
	}
}

// TestCleanFileNoIssues covers a contract with no flagged patterns.
func TestCleanFileNoIssues(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "clean.sol", "contract X { uint256 total; function add(uint256 a, uint256 b) public returns (uint256) { return a + b; } }\n")

	reg := rule.NewRegistry()
	_ = reg.Register(txOriginRule{})
	e, _ := newTestEngine(t, reg)

	res, err := e.AnalyzeFile(context.Background(), path, recommendedConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", res.Issues)
	}
	if res.HasParseErrors() {
		t.Fatalf("expected no parse errors")
	}
}

// TestMixedValidAndInvalidFiles covers a batch with one parseable and one garbage file.
func TestMixedValidAndInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	valid := writeTempFile(t, dir, "a_valid.sol", "contract X { function f() public {} }\n")
	invalid := writeTempFile(t, dir, "b_invalid.sol", "!!! not solidity {{{ \x00")

	reg := rule.NewRegistry()
	_ = reg.Register(txOriginRule{})
	e, _ := newTestEngine(t, reg)

	agg, err := e.Analyze(context.Background(), []string{invalid, valid}, recommendedConfig(), Options{MaxConcurrency: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agg.Files) != 2 {
		t.Fatalf("expected 2 files in aggregate, got %d", len(agg.Files))
	}
	if agg.Files[0].FilePath != valid || agg.Files[1].FilePath != invalid {
		t.Fatalf("expected resolved-path order, got %s then %s", agg.Files[0].FilePath, agg.Files[1].FilePath)
	}
	if !agg.HasParseErrors {
		t.Fatalf("expected has_parse_errors to be true")
	}
}

// TestRuleIsolation checks that a panicking rule does not prevent other rules from reporting.
func TestRuleIsolation(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "x.sol", "pragma solidity ^0.8.0;\ncontract X { function f() public { require(tx.origin == msg.sender); } }\n")

	reg := rule.NewRegistry()
	_ = reg.Register(panicRule{})
	_ = reg.Register(txOriginRule{})
	e, _ := newTestEngine(t, reg)

	cfg := config.Effective{Rules: map[string]config.RuleEntry{
		"security/panics":    {Severity: config.Error},
		"security/tx-origin": {Severity: config.Error},
	}}

	res, err := e.AnalyzeFile(context.Background(), path, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sawInternalError, sawTxOrigin bool
	for _, it := range res.Issues {
		if it.RuleID == "engine/internal-rule-error" {
			sawInternalError = true
		}
		if it.RuleID == "security/tx-origin" {
			sawTxOrigin = true
		}
	}
	if !sawInternalError {
		t.Fatalf("expected an INTERNAL_RULE_ERROR diagnostic, got %+v", res.Issues)
	}
	if !sawTxOrigin {
		t.Fatalf("expected the other rule's issue to still be emitted, got %+v", res.Issues)
	}
}

// TestCacheHit checks that re-analyzing an unchanged file hits the cache.
func TestCacheHit(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "x.sol", "contract X { function f() public {} }\n")

	reg := rule.NewRegistry()
	_ = reg.Register(txOriginRule{})
	e, store := newTestEngine(t, reg)
	cfg := recommendedConfig()

	if _, err := e.AnalyzeFile(context.Background(), path, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.AnalyzeFile(context.Background(), path, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := store.Stats()
	if stats.Hits != 1 {
		t.Fatalf("expected exactly 1 cache hit, got %+v", stats)
	}
}

// TestDeterminismAcrossConcurrency checks that results are identical regardless of worker count.
func TestDeterminismAcrossConcurrency(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 6; i++ {
		paths = append(paths, writeTempFile(t, dir, string(rune('a'+i))+".sol",
			"contract X { function f() public { require(tx.origin == msg.sender); } }\n"))
	}

	reg := rule.NewRegistry()
	_ = reg.Register(txOriginRule{})
	cfg := recommendedConfig()

	e1, _ := newTestEngine(t, reg)
	serial, err := e1.Analyze(context.Background(), paths, cfg, Options{MaxConcurrency: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e2, _ := newTestEngine(t, reg)
	parallel, err := e2.Analyze(context.Background(), paths, cfg, Options{MaxConcurrency: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(serial.Files) != len(parallel.Files) {
		t.Fatalf("mismatched file counts: %d vs %d", len(serial.Files), len(parallel.Files))
	}
	for i := range serial.Files {
		if serial.Files[i].FilePath != parallel.Files[i].FilePath {
			t.Fatalf("file order mismatch at %d: %s vs %s", i, serial.Files[i].FilePath, parallel.Files[i].FilePath)
		}
		if len(serial.Files[i].Issues) != len(parallel.Files[i].Issues) {
			t.Fatalf("issue count mismatch for %s", serial.Files[i].FilePath)
		}
	}
}
