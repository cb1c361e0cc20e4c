package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// GlobResolver is the reference Resolver: it walks each root (a file, a
// directory, or a path containing glob metacharacters), keeping any file
// whose name matches Include and none of Exclude, and returns every match
// as a sorted, deduplicated list of absolute paths.
type GlobResolver struct {
	Include []string
	Exclude []string
}

// NewGlobResolver returns a GlobResolver defaulting to "*.sol" when include
// is empty.
func NewGlobResolver(include, exclude []string) *GlobResolver {
	if len(include) == 0 {
		include = []string{"*.sol"}
	}
	return &GlobResolver{Include: include, Exclude: exclude}
}

func (r *GlobResolver) Resolve(roots []string) ([]string, error) {
	includes, err := compileGlobs(r.Include)
	if err != nil {
		return nil, err
	}
	excludes, err := compileGlobs(r.Exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []string

	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if seen[abs] {
			return nil
		}
		if !matchesAny(includes, filepath.Base(abs)) {
			return nil
		}
		if matchesAny(excludes, filepath.Base(abs)) {
			return nil
		}
		seen[abs] = true
		out = append(out, abs)
		return nil
	}

	var expanded []string
	for _, root := range roots {
		if !strings.ContainsAny(root, "*?[") {
			expanded = append(expanded, root)
			continue
		}
		matches, err := filepath.Glob(root)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, matches...)
	}

	for _, root := range expanded {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := add(root); err != nil {
				return nil, err
			}
			continue
		}
		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
