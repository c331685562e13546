package reduce

import "context"

// newParensMethod and newBracketsMethod implement "parens"/"brackets"
// (spec.md §4.4): at pos, if the current byte is '(' (respectively '{'),
// find the matching close. First candidate: delete the entire span
// including the brackets. If rejected, second candidate: delete only the
// two bracket characters, keeping their contents. If the opener has no
// match, do nothing.
func newParensMethod() *Method {
	return &Method{
		name:     MethodParens,
		priority: canonicalPriority[MethodParens],
		tryAt:    tryParens,
	}
}

func newBracketsMethod() *Method {
	return &Method{
		name:     MethodBrackets,
		priority: canonicalPriority[MethodBrackets],
		tryAt:    tryBrackets,
	}
}

func tryParens(ctx context.Context, e *Engine, pos *int) bool {
	return tryBracketPair(ctx, e, MethodParens, pos, '(', matchParens)
}

func tryBrackets(ctx context.Context, e *Engine, pos *int) bool {
	return tryBracketPair(ctx, e, MethodBrackets, pos, '{', matchBraces)
}

func tryBracketPair(ctx context.Context, e *Engine, method string, pos *int, open byte, match func(*Buffer, int) (int, bool)) bool {
	b := e.Buffer()
	i := *pos

	if i >= b.Len() || b.At(i) != open {
		return false
	}

	closeIdx, ok := match(b, i)
	if !ok {
		return false
	}

	if tryEdit(ctx, e, method, i, i, closeIdx+1, "", false) {
		return true
	}

	inner := b.Slice(i+1, closeIdx)

	return tryEdit(ctx, e, method, i, i, closeIdx+1, inner, false)
}
