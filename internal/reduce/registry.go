package reduce

import (
	"context"
	"sort"
)

// Method names, exactly as the CLI flags name them.
const (
	MethodAllBlanks     = "all_blanks"
	MethodBlanks        = "blanks"
	MethodCRC           = "crc"
	MethodMoveFunc      = "move_func"
	MethodDelArgs       = "del_args"
	MethodBrackets      = "brackets"
	MethodTernary       = "ternary"
	MethodParens        = "parens"
	MethodReplaceRegex  = "replace_regex"
	MethodShortenInts   = "shorten_ints"
	MethodIndent        = "indent"
)

// canonicalPriority is the canonical rank table (lower runs earlier
// within an outer pass).
var canonicalPriority = map[string]int{
	MethodAllBlanks:    0,
	MethodBlanks:       1,
	MethodCRC:          1,
	MethodMoveFunc:     2,
	MethodDelArgs:      2,
	MethodBrackets:     2,
	MethodTernary:      2,
	MethodParens:       3,
	MethodReplaceRegex: 4,
	MethodShortenInts:  5,
	MethodIndent:       15,
}

// AllMethodNames returns every registered method name, in canonical
// priority order then alphabetically (stable for --all and for help
// text).
func AllMethodNames() []string {
	names := make([]string, 0, len(canonicalPriority))
	for name := range canonicalPriority {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if canonicalPriority[names[i]] != canonicalPriority[names[j]] {
			return canonicalPriority[names[i]] < canonicalPriority[names[j]]
		}

		return names[i] < names[j]
	})

	return names
}

// Method is one named reduction capability: a priority rank and a tryAt
// function that proposes and tests candidate edits at a single buffer
// position.
//
// tryAt receives pos as a pointer. Most methods never touch it: the
// driver advances it by one on failure and leaves it unchanged on success
// so further edits may apply at the same site. A method that needs to
// skip past the region it just edited -- move_func, del_args -- advances
// *pos itself; the driver detects the change and does not also
// increment it.
//
// okToEnlarge documents whether any of this method's edits may
// legitimately grow the buffer. The harness does not read this field;
// each edit passes its own flag to [Engine.Trial], which enforces it as a
// contract.
type Method struct {
	name        string
	priority    int
	okToEnlarge bool
	tryAt       func(ctx context.Context, e *Engine, pos *int) bool
}

// Name returns the method's registry name.
func (m *Method) Name() string { return m.name }

// Priority returns the method's canonical rank.
func (m *Method) Priority() int { return m.priority }

// Registry is the full method catalogue, in declaration order.
// [Registry.Enabled] returns the subset enabled for one reduction run,
// sorted ascending by priority (spec.md §3: "Outer passes sort enabled
// methods by rank ascending").
type Registry struct {
	methods []*Method
}

// NewRegistry builds the full method catalogue. Callers select a subset
// via [Registry.Enabled].
func NewRegistry() *Registry {
	all := []*Method{
		newAllBlanksMethod(),
		newBlanksMethod(),
		newCRCMethod(),
		newMoveFuncMethod(),
		newDelArgsMethod(),
		newBracketsMethod(),
		newTernaryMethod(),
		newParensMethod(),
		newReplaceRegexMethod(),
		newShortenIntsMethod(),
		newIndentMethod(),
	}

	return &Registry{methods: all}
}

// Lookup returns the method with the given name, or (nil, false).
func (r *Registry) Lookup(name string) (*Method, bool) {
	for _, m := range r.methods {
		if m.name == name {
			return m, true
		}
	}

	return nil, false
}

// Enabled returns the methods named by names, sorted ascending by
// priority (ties broken by name for determinism). Returns
// [ErrUnknownMethod] wrapping the offending name if any name isn't
// registered.
func (r *Registry) Enabled(names []string) ([]*Method, error) {
	selected := make([]*Method, 0, len(names))

	for _, name := range names {
		m, ok := r.Lookup(name)
		if !ok {
			return nil, fatalf("%w: %s", ErrUnknownMethod, name)
		}

		selected = append(selected, m)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].priority != selected[j].priority {
			return selected[i].priority < selected[j].priority
		}

		return selected[i].name < selected[j].name
	})

	return selected, nil
}
