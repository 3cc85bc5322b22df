package stringsfile

import "fmt"

// AnomalyKind classifies regions of a file the parser could not interpret
// as well-formed entries.
type AnomalyKind string

const (
	// AnomalyUnterminated flags a statement whose terminator never appears
	// before end of input.
	AnomalyUnterminated AnomalyKind = "unterminated-statement"

	// AnomalyBadKey flags an entry-start line whose key never closes.
	AnomalyBadKey AnomalyKind = "key-extraction-failed"

	// AnomalyUnrecognized flags a line that is neither blank, comment nor
	// entry start.
	AnomalyUnrecognized AnomalyKind = "unrecognized-line"

	// AnomalyDuplicateKey flags a key defined more than once. The first
	// occurrence stays authoritative.
	AnomalyDuplicateKey AnomalyKind = "duplicate-key"
)

// Anomaly records one uninterpretable region with a location hint.
type Anomaly struct {
	// Line is the 1-based line number where the region starts.
	Line int

	Kind AnomalyKind

	// Detail carries the offending key when one was extracted.
	Detail string

	_ struct{}
}

func (a Anomaly) String() string {
	if a.Detail != "" {
		return fmt.Sprintf("line %d: %s (%q)", a.Line, a.Kind, a.Detail)
	}
	return fmt.Sprintf("line %d: %s", a.Line, a.Kind)
}

// Blocking reports whether the anomaly makes a rewrite of the file unsafe.
// A duplicate key is not blocking: the first occurrence wins and the file
// may still be synchronized.
func (a Anomaly) Blocking() bool {
	return a.Kind != AnomalyDuplicateKey
}

// Blocked reports whether any anomaly in the list prevents rewriting the
// file. In strict mode any anomaly at all blocks.
func Blocked(anomalies []Anomaly, strict bool) bool {
	for _, a := range anomalies {
		if strict || a.Blocking() {
			return true
		}
	}
	return false
}
