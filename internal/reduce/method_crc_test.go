package reduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC_RewritesToPrintf(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, `transparent_crc(g_1, "x", 0); X`, "X")

	pos := 1 // first non-sentinel byte

	m := newCRCMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.True(t, worked)
	require.Contains(t, e.Buffer().String(), `printf ("%d\n", (int)g_1)`)
}

func TestCRC_NoMatch_WhenNotTheCallee(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "some_other_call(a, b); X", "X")
	pos := 1

	m := newCRCMethod()
	worked := m.tryAt(context.Background(), e, &pos)
	require.False(t, worked)
}
