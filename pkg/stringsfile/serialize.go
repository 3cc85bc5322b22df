package stringsfile

import (
	"strings"

	"github.com/oneconcern/stringsync/pkg/model"
)

// Render produces file text from a preserved header, the planned entries
// and a preserved trailer. Entry statement lines are emitted verbatim.
// Runs of more than one blank line outside statement lines collapse to a
// single blank line; nothing else is normalized.
func Render(header []string, entries []model.Entry, trailer []string) string {
	var (
		out       []string
		lastBlank bool
	)
	emit := func(lines []string, collapse bool) {
		for _, l := range lines {
			blank := collapse && strings.TrimSpace(l) == ""
			if blank && lastBlank {
				continue
			}
			out = append(out, l)
			lastBlank = blank
		}
	}

	emit(header, true)
	for _, e := range entries {
		emit(e.Leading, true)
		emit(e.RawLines, false)
	}
	emit(trailer, true)

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

// RenderFile renders a parsed file back to text unchanged, useful for
// round-trip checks.
func RenderFile(f model.ParsedFile) string {
	return Render(f.Header, f.Entries, f.Trailer)
}
