package main

import (
	"github.com/solguard/solguard/cache"
	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/configloader"
	"github.com/solguard/solguard/engine"
	"github.com/solguard/solguard/internal/xlog"
	"github.com/solguard/solguard/parser"
	"github.com/solguard/solguard/resolver"
	"github.com/solguard/solguard/rules"
)

const defaultCacheEntries = 10000

// loadConfig resolves the effective rule configuration: the file at
// configPath if one was given, resolved against the built-in presets, or
// the "recommended" preset outright when no config file was specified.
func loadConfig(configPath, dir string) (config.Effective, error) {
	presetRegistry := rules.NewPresetRegistry()

	if configPath == "" {
		fragment, _ := presetRegistry.Preset("recommended")
		return config.Effective{BasePath: dir, Rules: map[string]config.RuleEntry(fragment)}, nil
	}

	return configloader.New(presetRegistry).Load(configPath, dir)
}

// resolveFiles expands roots (files, directories, or globs) into a sorted,
// deduplicated list of Solidity source paths.
func resolveFiles(roots []string, include, exclude []string) ([]string, error) {
	r := resolver.NewGlobResolver(include, exclude)
	return r.Resolve(roots)
}

// newEngine builds an Engine over the full built-in rule registry, an
// in-memory LRU result cache (skipped entirely when disabled), and log.
func newEngine(log xlog.Logger, noCache bool) (*engine.Engine, error) {
	var store cache.Store
	if !noCache {
		lru, err := cache.NewLRUStore(defaultCacheEntries, 0)
		if err != nil {
			return nil, err
		}
		store = lru
	}
	return engine.New(rules.NewRegistry(), parser.NewReference(), store, log), nil
}
