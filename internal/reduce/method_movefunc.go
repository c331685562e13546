package reduce

import "context"

// newMoveFuncMethod implements "move_func": locate a prototype and its
// matching definition whose name equals the prototype's name, both
// starting at or after pos. Replace the prototype with the full
// definition body, effectively moving the definition up. Advances pos
// past the replaced prototype either way, since a method that reshuffles
// function bodies must explicitly skip past the region it just edited.
func newMoveFuncMethod() *Method {
	return &Method{
		name:        MethodMoveFunc,
		priority:    canonicalPriority[MethodMoveFunc],
		okToEnlarge: true,
		tryAt:       tryMoveFunc,
	}
}

func tryMoveFunc(ctx context.Context, e *Engine, pos *int) bool {
	b := e.Buffer()
	start := *pos

	protoEnd, name, ok := matchPROTO(b, start, "")
	if !ok {
		return false
	}

	defStart, defEnd, ok := findMatchingFunc(b, start, name)
	if !ok {
		*pos = protoEnd
		return false
	}

	definitionText := b.Slice(defStart, defEnd)

	accepted := tryEdit(ctx, e, MethodMoveFunc, start, start, protoEnd, definitionText, true)
	if accepted {
		*pos = start + len(definitionText)
	} else {
		*pos = protoEnd
	}

	return accepted
}

// findMatchingFunc searches from pos to the end of the buffer for a FUNC
// definition whose name matches, returning its span.
func findMatchingFunc(b *Buffer, pos int, name string) (start, end int, ok bool) {
	for q := pos; q < b.Len(); q++ {
		if fEnd, _, fOK := matchFUNC(b, q, name); fOK {
			return q, fEnd, true
		}
	}

	return 0, 0, false
}
