package reduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveFunc_ReplacesPrototypeWithDefinition(t *testing.T) {
	t.Parallel()

	src := "int foo(void); int foo(void) { return 1; } X"
	e, _ := testEngine(t, src, "X")

	pos := 1 // start of "int foo(void);"

	m := newMoveFuncMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.True(t, worked)
	require.Contains(t, e.Buffer().String(), "return 1")
	require.NotContains(t, e.Buffer().String(), "foo(void);")
}

func TestMoveFunc_NoMatch_WhenNoPrototype(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "int foo(void) { return 1; } X", "X")
	pos := 1

	m := newMoveFuncMethod()
	worked := m.tryAt(context.Background(), e, &pos)
	require.False(t, worked)
}

func TestDelArgs_RecordsNameAndAdvancesWithoutEditing(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "int foo(int a, int b); X", "X")
	pos := 1

	m := newDelArgsMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.False(t, worked) // del_args never proposes an edit (spec.md §9)
	require.Greater(t, pos, 1)
	require.Equal(t, " int foo(int a, int b); X ", e.Buffer().String())
	require.True(t, e.FuncSeen("foo")) // already recorded by tryAt
}
