package reduce

import (
	"context"
	"strings"
)

// newAllBlanksMethod implements "all_blanks": a one-shot method that
// never advances pos on its own and performs three
// whole-buffer edits, each tried independently through the harness:
//
//  1. collapse every whitespace run to a single space (non-enlarging)
//  2. insert a newline after every ':' that precedes non-space
//     (enlarging allowed)
//  3. pad commas with surrounding spaces, collapsing the whitespace
//     around them (enlarging allowed)
func newAllBlanksMethod() *Method {
	return &Method{
		name:        MethodAllBlanks,
		priority:    canonicalPriority[MethodAllBlanks],
		okToEnlarge: true,
		tryAt:       tryAllBlanks,
	}
}

func tryAllBlanks(ctx context.Context, e *Engine, pos *int) bool {
	if *pos != 0 {
		return false
	}

	worked := false

	if whole(ctx, e, collapseWhitespaceRuns, false) {
		worked = true
	}

	if whole(ctx, e, insertNewlineAfterColon, true) {
		worked = true
	}

	if whole(ctx, e, padAndCollapseCommas, true) {
		worked = true
	}

	return worked
}

// whole applies transform to the entire current buffer content and, if it
// changes anything, offers it as a single whole-buffer candidate edit.
func whole(ctx context.Context, e *Engine, transform func(string) string, okToEnlarge bool) bool {
	b := e.Buffer()
	old := b.String()
	next := transform(old)

	if next == old {
		return false
	}

	return tryEdit(ctx, e, MethodAllBlanks, 0, 0, b.Len(), next, okToEnlarge)
}

// collapseWhitespaceRuns replaces every run of one or more whitespace
// bytes with a single space (so a lone tab or newline also becomes a
// space). Idempotent: a second application is a no-op.
func collapseWhitespaceRuns(s string) string {
	var buf strings.Builder

	buf.Grow(len(s))

	i := 0
	for i < len(s) {
		if isSpace(s[i]) {
			buf.WriteByte(' ')

			for i < len(s) && isSpace(s[i]) {
				i++
			}

			continue
		}

		buf.WriteByte(s[i])
		i++
	}

	return buf.String()
}

// insertNewlineAfterColon inserts '\n' after every ':' not already
// followed by whitespace. Idempotent: once a newline follows, the rule no
// longer fires there.
func insertNewlineAfterColon(s string) string {
	var buf strings.Builder

	buf.Grow(len(s))

	for i := 0; i < len(s); i++ {
		buf.WriteByte(s[i])

		if s[i] == ':' && i+1 < len(s) && !isSpace(s[i+1]) {
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

// padAndCollapseCommas surrounds every ',' with a single space on each
// side, collapsing any whitespace that was already present next to the
// comma. Whitespace elsewhere (such as the newline inserted after a ':')
// is left as is. Idempotent.
func padAndCollapseCommas(s string) string {
	var buf strings.Builder

	buf.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] == ',' {
			// Trim any whitespace already written immediately before the
			// comma so re-application doesn't accumulate spaces.
			out := buf.String()
			out = strings.TrimRight(out, " \t\n\r\v\f")
			buf.Reset()
			buf.WriteString(out)
			buf.WriteString(" , ")

			i++

			for i < len(s) && isSpace(s[i]) {
				i++
			}

			continue
		}

		buf.WriteByte(s[i])
		i++
	}

	return buf.String()
}
