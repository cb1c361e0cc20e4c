// Package formatter renders an AggregateResult for human or machine
// consumption. Formatting itself is outside the core analysis contract; this
// package defines the interface external callers implement and ships one
// reference implementation.
package formatter

import "github.com/solguard/solguard/result"

// Formatter renders agg as a string suitable for writing to stdout/stderr.
type Formatter interface {
	Format(agg *result.AggregateResult) (string, error)
}
