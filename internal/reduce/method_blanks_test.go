package reduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlanks_CollapsesWhitespaceRun(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "a    b; X", "X")
	pos := indexByte(e.Buffer(), 'a') + 1

	m := newBlanksMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.True(t, worked)
	require.Equal(t, " a b; X ", e.Buffer().String())
}

func TestBlanks_NoMatch_OnSingleSpace(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "a b; X", "X")
	pos := indexByte(e.Buffer(), 'a') + 1

	m := newBlanksMethod()
	worked := m.tryAt(context.Background(), e, &pos)
	require.False(t, worked)
}

func TestAllBlanks_CollapsesAndInsertsNewlineAfterColon(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "a:b,c; X", "X")
	pos := 0

	m := newAllBlanksMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.True(t, worked)

	got := e.Buffer().String()
	require.Contains(t, got, "a:\n")
	require.Contains(t, got, "X")
}

func TestAllBlanks_Idempotent(t *testing.T) {
	t.Parallel()

	s := "int   x ,  y :  z ;"
	first := collapseWhitespaceRuns(s)
	require.Equal(t, first, collapseWhitespaceRuns(first))

	second := insertNewlineAfterColon(s)
	require.Equal(t, second, insertNewlineAfterColon(second))

	third := padAndCollapseCommas(s)
	require.Equal(t, third, padAndCollapseCommas(third))
}

func TestAllBlanks_OnlyFiresAtPosZero(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "a  b; X", "X")
	pos := 3

	m := newAllBlanksMethod()
	worked := m.tryAt(context.Background(), e, &pos)
	require.False(t, worked)
}
