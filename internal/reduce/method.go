package reduce

import "context"

// tryEdit applies a single candidate edit (replacing the bytes in [i, j)
// with repl) and tests it through the oracle harness. It is the only way
// method implementations should mutate the buffer, since it also captures
// any fatal error onto e.lastFatal for the driver to observe (tryAt's
// bool-only signature can't return one directly).
//
// Unlike [tryEditRule], it applies no whitespace-equivalence check, so
// whitespace-only edits (blanks, all_blanks, indent) reach the oracle.
func tryEdit(ctx context.Context, e *Engine, method string, pos int, i, j int, repl string, okToEnlarge bool) bool {
	e.Buffer().Splice(i, j, repl)

	accepted, err := e.Trial(ctx, method, pos, okToEnlarge)
	if err != nil {
		e.lastFatal = err
		return false
	}

	return accepted
}

// tryEditRule is [tryEdit] plus per-rule bookkeeping: replace_regex's
// catalogue is large enough that spec.md's Statistics section calls out
// per-rule (not just per-method) success/failure counters, indexed by
// the rule's position within its catalogue list. It returns false
// without touching the buffer if the stripped-of-whitespace forms of the
// old and new spans are equal -- the edit would not reduce anything.
// Only records an outcome when a trial actually happened -- that skip
// never reaches the oracle, so it isn't a rule failure.
func tryEditRule(ctx context.Context, e *Engine, method string, ruleIndex int, ruleLabel string, pos int, i, j int, repl string, okToEnlarge bool) bool {
	old := e.Buffer().Slice(i, j)
	if stripWhitespaceEqual(old, repl) {
		return false
	}

	e.Buffer().Splice(i, j, repl)

	accepted, err := e.Trial(ctx, method, pos, okToEnlarge)
	if err != nil {
		e.lastFatal = err
		return false
	}

	e.Stats().RecordRule(method, ruleIndex, ruleLabel, accepted)

	return accepted
}

// stripWhitespaceEqual reports whether a and b are equal once all
// whitespace bytes are removed.
func stripWhitespaceEqual(a, b string) bool {
	return stripSpaces(a) == stripSpaces(b)
}

func stripSpaces(s string) string {
	buf := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			buf = append(buf, s[i])
		}
	}

	return string(buf)
}
