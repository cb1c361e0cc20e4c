package fix

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a unified-style textual diff between the original and fixed
// source for a single file, for display by an external formatter.
func Diff(path, original, fixed string) string {
	if original == fixed {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, fixed, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)

	for _, d := range diffs {
		lines := strings.SplitAfter(d.Text, "\n")
		for _, line := range lines {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				b.WriteString("-" + line)
			case diffmatchpatch.DiffInsert:
				b.WriteString("+" + line)
			case diffmatchpatch.DiffEqual:
				b.WriteString(" " + line)
			}
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
