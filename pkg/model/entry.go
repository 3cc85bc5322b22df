// Copyright © 2024 One Concern

// Package model describes the data model for localization resource files:
// entries, parsed files, merge plans and per-file sync reports.
package model

// Entry is one key/value statement in a resource file, kept together with
// its verbatim source lines. Entries are never re-serialized from a decoded
// value: RawLines reproduce the original bytes, so formatting, quoting and
// escapes survive a round-trip unchanged.
type Entry struct {
	// Key is the escape-decoded key. Identity is exact character match.
	Key string

	// RawLines are the exact source lines of the statement, first line
	// holding the key, possibly continued over several physical lines.
	RawLines []string

	// Leading holds the verbatim comment and blank lines immediately
	// preceding the statement. They travel with the entry when the merge
	// reorders it.
	Leading []string

	_ struct{}
}

// SameKey reports whether both entries denote the same logical record.
func (e Entry) SameKey(o Entry) bool {
	return e.Key == o.Key
}

// ParsedFile is the result of parsing one resource file.
type ParsedFile struct {
	// Header holds the comment/blank lines preceding the first entry.
	Header []string

	// Entries in first-occurrence order. A well-formed file has no
	// duplicate keys; on duplicates the first occurrence is kept and the
	// later ones surface as parse anomalies.
	Entries []Entry

	// Trailer holds comment/blank lines following the last entry.
	Trailer []string

	_ struct{}
}

// Index returns the entries keyed for O(1) membership tests. First
// occurrence wins, matching the parser's duplicate handling.
func (p ParsedFile) Index() map[string]Entry {
	idx := make(map[string]Entry, len(p.Entries))
	for _, e := range p.Entries {
		if _, ok := idx[e.Key]; ok {
			continue
		}
		idx[e.Key] = e
	}
	return idx
}
