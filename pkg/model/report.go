package model

// Outcome of processing one target file.
type Outcome string

const (
	// OutcomeSynced means the file already matched the base key set and
	// order; nothing was written.
	OutcomeSynced Outcome = "synced"

	// OutcomeAdded means missing keys were copied from the base.
	OutcomeAdded Outcome = "added-keys"

	// OutcomeParseFailed means the file could not be interpreted safely
	// and was excluded from synchronization.
	OutcomeParseFailed Outcome = "parse-failed"

	// OutcomeWriteFailed means the merged output could not be written.
	OutcomeWriteFailed Outcome = "write-failed"

	// OutcomeSkipped means the file was deliberately left untouched, e.g.
	// the base file itself, an unreadable subtree, or any target when the
	// base has no entries.
	OutcomeSkipped Outcome = "skipped"
)

// FileReport is the per-file record handed to the reporting boundary.
type FileReport struct {
	Path      string   `json:"path" yaml:"path"`
	Outcome   Outcome  `json:"outcome" yaml:"outcome"`
	Added     []string `json:"added,omitempty" yaml:"added,omitempty"`
	Anomalies []string `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty"`
	_         struct{}
}

// Failed reports whether the outcome counts as a failure for exit-status
// purposes at the CLI boundary.
func (r FileReport) Failed() bool {
	return r.Outcome == OutcomeParseFailed || r.Outcome == OutcomeWriteFailed
}
