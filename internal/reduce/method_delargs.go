package reduce

import "context"

// newDelArgsMethod implements "del_args": for each not-yet-seen function
// name whose prototype starts at pos, record the name and advance pos
// past the prototype.
//
// The coordinated edit the name implies -- removing a parameter from
// both the prototype/definition and every call site -- is left as a
// documented extension point rather than invented outright. This never
// proposes a candidate edit, so it never shows up as a success in the
// statistics; only the position-advance and bookkeeping are implemented.
func newDelArgsMethod() *Method {
	return &Method{
		name:     MethodDelArgs,
		priority: canonicalPriority[MethodDelArgs],
		tryAt:    tryDelArgs,
	}
}

func tryDelArgs(ctx context.Context, e *Engine, pos *int) bool {
	b := e.Buffer()
	start := *pos

	protoEnd, name, ok := matchPROTO(b, start, "")
	if !ok {
		return false
	}

	e.FuncSeen(name) // records on first sighting; no-op if already seen
	*pos = protoEnd

	return false
}
