package reduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParens_DeletesWholeSpan_WhenOracleAcceptsItEmpty(t *testing.T) {
	t.Parallel()

	// "(b + c)" can be deleted entirely and the file stays interesting.
	e, _ := testEngine(t, "a = (b + c); X", "X")

	b := e.Buffer()
	open := indexByte(b, '(')
	pos := open

	m := newParensMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.True(t, worked)
	require.Equal(t, " a = ; X ", b.String())
}

func TestParens_FallsBackToUnwrapping_WhenWholeSpanRejected(t *testing.T) {
	t.Parallel()

	// Oracle requires "b + c" to remain present, so deleting the whole
	// parenthesized span is rejected but unwrapping the parens (keeping
	// the contents) is accepted.
	e, _ := testEngine(t, "a = (b + c); X", "b + c")

	b := e.Buffer()
	open := indexByte(b, '(')
	pos := open

	m := newParensMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.True(t, worked)
	require.Equal(t, " a = b + c; X ", b.String())
}

func TestParens_NoMatch_WhenUnbalanced(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "a = (b + c; X", "X")

	b := e.Buffer()
	open := indexByte(b, '(')
	pos := open

	m := newParensMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.False(t, worked)
	require.Equal(t, " a = (b + c; X ", b.String())
}

func TestBrackets_DeletesBracesOnly(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "int main(void){int x; X; return 0;}", "X")

	b := e.Buffer()
	open := indexByte(b, '{')
	pos := open

	m := newBracketsMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.True(t, worked)
	require.Contains(t, b.String(), "X")
}

func indexByte(b *Buffer, c byte) int {
	for i := 0; i < b.Len(); i++ {
		if b.At(i) == c {
			return i
		}
	}

	return -1
}
