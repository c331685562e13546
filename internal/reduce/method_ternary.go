package reduce

import "context"

// newTernaryMethod implements "ternary" (spec.md §4.4): at pos, if a
// border-flanked "a ? b : c" pattern is present, offer two candidates in
// turn: replace the whole expression with b, then (independently, after
// the first is tested and possibly reverted) with c.
func newTernaryMethod() *Method {
	return &Method{
		name:     MethodTernary,
		priority: canonicalPriority[MethodTernary],
		tryAt:    tryTernary,
	}
}

func tryTernary(ctx context.Context, e *Engine, pos *int) bool {
	b := e.Buffer()
	i := *pos

	aEnd, ok := matchFULLVAR(b, i)
	if !ok {
		return false
	}

	j := skipSpaces(b, aEnd)
	if j >= b.Len() || b.At(j) != '?' {
		return false
	}

	j = skipSpaces(b, j+1)

	bStart := j
	bEnd, ok := matchFULLVAR(b, j)
	if !ok {
		return false
	}

	k := skipSpaces(b, bEnd)
	if k >= b.Len() || b.At(k) != ':' {
		return false
	}

	k = skipSpaces(b, k+1)

	cStart := k
	cEnd, ok := matchFULLVAR(b, k)
	if !ok {
		return false
	}

	if !atBorder(b, i, cEnd) {
		return false
	}

	bText := b.Slice(bStart, bEnd)
	cText := b.Slice(cStart, cEnd)

	if tryEdit(ctx, e, MethodTernary, i, i, cEnd, bText, false) {
		return true
	}

	return tryEdit(ctx, e, MethodTernary, i, i, cEnd, cText, false)
}
