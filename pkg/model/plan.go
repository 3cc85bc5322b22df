package model

// MergePlan is the ordered output chosen by the synchronizer for one target
// file: exactly one entry per base key, in base order. The order is a
// function of the base file alone, never of the target's prior order.
type MergePlan struct {
	// Entries in base-file key order. Each entry comes either from the
	// target (translation preserved) or from the base (placeholder copy).
	Entries []Entry

	// Added lists the keys copied from the base because the target lacked
	// them, in base order.
	Added []string

	_ struct{}
}
