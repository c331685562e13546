package reduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestShortenInts_ScenarioChain reproduces spec.md §8 scenario 3: starting
// from "0x1ULL", successive accepted edits yield 0x1UL, then 0x1U, then
// 0x1, then 1.
func TestShortenInts_ScenarioChain(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "int x = 0x1ULL; X", "X")

	literalStart := indexByte(e.Buffer(), '0')

	step := func() string {
		pos := literalStart
		m := newShortenIntsMethod()

		worked := m.tryAt(context.Background(), e, &pos)
		require.True(t, worked)

		return literalAt(e.Buffer(), literalStart)
	}

	require.Equal(t, "0x1UL", step())
	require.Equal(t, "0x1U", step())
	require.Equal(t, "0x1", step())
	require.Equal(t, "1", step())
}

// literalAt returns the run of non-whitespace, non-semicolon bytes
// starting at pos, for comparing the shrinking integer literal across
// steps.
func literalAt(b *Buffer, pos int) string {
	i := pos
	for i < b.Len() && b.At(i) != ';' && !isSpace(b.At(i)) {
		i++
	}

	return b.Slice(pos, i)
}

func TestShortenInts_NoMatch_OnNonLiteral(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "foo = bar; X", "X")
	pos := indexByte(e.Buffer(), 'f')

	m := newShortenIntsMethod()
	worked := m.tryAt(context.Background(), e, &pos)
	require.False(t, worked)
}
