package issue

import "github.com/solguard/solguard/sourceview"

// Fix is an atomic textual edit attached to an Issue. Range refers to a span
// in the original source; Text is the replacement. A fix must lie entirely
// within the file and satisfy Range.Valid()
type Fix struct {
	Range       sourceview.Range
	Text        string
	Description string
}
