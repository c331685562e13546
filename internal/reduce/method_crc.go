package reduce

import (
	"context"
	"strings"
)

// newCRCMethod implements "crc": at pos, if the buffer begins with
// "transparent_crc ( args )", replace the entire call with
// printf ("%d\n", (int)first_arg), where first_arg is the first
// comma-separated token of args. Assumed non-enlarging; the harness
// aborts if that assumption is ever violated.
func newCRCMethod() *Method {
	return &Method{
		name:     MethodCRC,
		priority: canonicalPriority[MethodCRC],
		tryAt:    tryCRC,
	}
}

const crcCalleeName = "transparent_crc"

func tryCRC(ctx context.Context, e *Engine, pos *int) bool {
	b := e.Buffer()
	i := *pos

	end, ok := matchKeyword(b, i, crcCalleeName)
	if !ok {
		return false
	}

	j := skipSpaces(b, end)
	if j >= b.Len() || b.At(j) != '(' {
		return false
	}

	closeParen, ok := matchParens(b, j)
	if !ok {
		return false
	}

	args := b.Slice(j+1, closeParen)

	firstArg := strings.TrimSpace(firstCommaToken(args))
	if firstArg == "" {
		return false
	}

	repl := `printf ("%d\n", (int)` + firstArg + `)`

	return tryEdit(ctx, e, MethodCRC, i, i, closeParen+1, repl, false)
}

// firstCommaToken returns the text before the first top-level comma in s
// (or all of s if there is none). Commas nested inside parens are
// skipped.
func firstCommaToken(s string) string {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return s[:i]
			}
		}
	}

	return s
}
