package reduce

import "context"

// newBlanksMethod implements "blanks" (spec.md §4.4): at pos, if two or
// more whitespace bytes begin there, collapse them to a single space.
// Offered as a non-enlarging candidate (collapsing never grows the
// buffer).
func newBlanksMethod() *Method {
	return &Method{
		name:     MethodBlanks,
		priority: canonicalPriority[MethodBlanks],
		tryAt:    tryBlanks,
	}
}

func tryBlanks(ctx context.Context, e *Engine, pos *int) bool {
	b := e.Buffer()
	i := *pos

	if i >= b.Len() || !isSpace(b.At(i)) {
		return false
	}

	j := i + 1
	for j < b.Len() && isSpace(b.At(j)) {
		j++
	}

	if j-i < 2 {
		return false
	}

	return tryEdit(ctx, e, MethodBlanks, i, i, j, " ", false)
}
