// Copyright © 2024 One Concern

// Package stringsfile parses and renders line-oriented localization
// resource files of the form:
//
//	/* translator note */
//	"key" = "value";
//
// Keys and values are double-quoted with backslash escaping, statements end
// with a semicolon, and a value may continue over several physical lines
// when a line ends with a trailing backslash. Entries are kept as verbatim
// source lines so rendering never reformats what a translator wrote.
package stringsfile

import (
	"strings"

	"github.com/oneconcern/stringsync/pkg/model"
)

const (
	lineCommentToken  = "//"
	blockCommentOpen  = "/*"
	blockCommentClose = "*/"

	quoteChar      = '"'
	escapeChar     = '\\'
	terminatorChar = ';'
)

// scanState is the escape state machine used while scanning quoted text.
type scanState int

const (
	scanNormal scanState = iota
	scanEscaped
)

// Parse runs a single forward pass over the file text and returns the
// parsed file along with any anomalies. Anomalous regions are recorded,
// never guessed at; scanning resumes on the following line so one bad
// region does not hide the rest of the file.
func Parse(text string) (model.ParsedFile, []Anomaly) {
	var (
		parsed      model.ParsedFile
		anomalies   []Anomaly
		pending     []string
		inBlock     bool
		headerTaken bool
	)
	seen := make(map[string]struct{})
	lines := splitLines(text)

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if inBlock {
			pending = append(pending, line)
			if strings.Contains(trimmed, blockCommentClose) {
				inBlock = false
			}
			continue
		}

		switch {
		case trimmed == "":
			pending = append(pending, line)

		case strings.HasPrefix(trimmed, lineCommentToken):
			pending = append(pending, line)

		case strings.HasPrefix(trimmed, blockCommentOpen):
			pending = append(pending, line)
			if !strings.Contains(trimmed[len(blockCommentOpen):], blockCommentClose) {
				inBlock = true
			}

		case trimmed[0] == quoteChar:
			key, ok := extractKey(line)
			if !ok {
				anomalies = append(anomalies, Anomaly{Line: i + 1, Kind: AnomalyBadKey})
				continue
			}
			raw, consumed, terminated := collectStatement(lines[i:])
			if !terminated {
				anomalies = append(anomalies, Anomaly{Line: i + 1, Kind: AnomalyUnterminated, Detail: key})
				i += consumed - 1
				continue
			}
			if !headerTaken {
				parsed.Header = pending
				pending = nil
				headerTaken = true
			}
			if _, dup := seen[key]; dup {
				// first occurrence is authoritative
				anomalies = append(anomalies, Anomaly{Line: i + 1, Kind: AnomalyDuplicateKey, Detail: key})
				pending = nil
				i += consumed - 1
				continue
			}
			seen[key] = struct{}{}
			parsed.Entries = append(parsed.Entries, model.Entry{
				Key:      key,
				RawLines: raw,
				Leading:  pending,
			})
			pending = nil
			i += consumed - 1

		default:
			anomalies = append(anomalies, Anomaly{Line: i + 1, Kind: AnomalyUnrecognized})
		}
	}

	if !headerTaken {
		// degenerate file: the whole content is header
		parsed.Header = pending
	} else {
		parsed.Trailer = pending
	}
	return parsed, anomalies
}

// extractKey scans the first quoted string on an entry-start line and
// returns the escape-decoded key. A backslash consumes the following
// character literally, so escaped quotes never terminate the key.
func extractKey(line string) (string, bool) {
	start := strings.IndexByte(line, byte(quoteChar))
	if start < 0 {
		return "", false
	}
	var (
		key strings.Builder
		st  scanState
	)
	for _, c := range line[start+1:] {
		if st == scanEscaped {
			key.WriteRune(c)
			st = scanNormal
			continue
		}
		switch c {
		case escapeChar:
			st = scanEscaped
		case quoteChar:
			return key.String(), true
		default:
			key.WriteRune(c)
		}
	}
	return "", false
}

// collectStatement accumulates physical lines until one both lacks the
// trailing continuation marker and has reached the statement terminator
// outside quotes. It returns the raw lines, the number of lines consumed
// and whether the statement actually terminated before end of input.
func collectStatement(rest []string) (raw []string, consumed int, terminated bool) {
	var (
		inQuotes bool
		st       scanState
		done     bool
	)
	for n, line := range rest {
		for _, c := range line {
			if st == scanEscaped {
				st = scanNormal
				continue
			}
			switch c {
			case escapeChar:
				st = scanEscaped
			case quoteChar:
				inQuotes = !inQuotes
			case terminatorChar:
				if !inQuotes {
					done = true
				}
			}
		}
		// a backslash pending at end of line is the continuation marker
		continued := st == scanEscaped
		st = scanNormal
		raw = append(raw, line)
		if !continued && done {
			return raw, n + 1, true
		}
	}
	return raw, len(rest), false
}

// splitLines cuts the text on newlines without inventing a trailing empty
// line for newline-terminated files. Carriage returns stay part of the
// line content so they round-trip untouched.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
