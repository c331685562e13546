package reduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func testDriver(t *testing.T, e *Engine, methodNames ...string) *Driver {
	t.Helper()

	r := NewRegistry()
	methods, err := r.Enabled(methodNames)
	require.NoError(t, err)

	return NewDriver(e, methods)
}

func TestDriver_Brackets_ReducesToFixpointKeepingMarker(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "int main(void){int x; X; return 0;}", "X")
	d := testDriver(t, e, MethodBrackets)

	err := d.Run(context.Background())
	require.NoError(t, err)

	require.Contains(t, e.Buffer().String(), "X")
	require.NotContains(t, e.Buffer().String(), "{")
	require.NotContains(t, e.Buffer().String(), "}")
}

func TestDriver_ShortenInts_ChainsDownToBareDigit(t *testing.T) {
	t.Parallel()

	// spec.md §8 scenario 3: 0x1ULL -> 0x1UL -> 0x1U -> 0x1 -> 1.
	e, _ := testEngine(t, "int x = 0x1ULL; X", "X")
	d := testDriver(t, e, MethodShortenInts)

	err := d.Run(context.Background())
	require.NoError(t, err)

	require.Contains(t, e.Buffer().String(), " 1; X")
	require.NotContains(t, e.Buffer().String(), "0x1")
}

func TestDriver_AllBlanks_CollapsesWhitespaceToFixpoint(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "int  a : b ,  c ;  X", "X")
	d := testDriver(t, e, MethodAllBlanks)

	err := d.Run(context.Background())
	require.NoError(t, err)

	got := e.Buffer().String()
	require.Contains(t, got, "X")
	require.NotContains(t, got, "  ") // no remaining double-space runs
}

func TestDriver_EmptyBody_TerminatesImmediately(t *testing.T) {
	t.Parallel()

	// An empty marker is trivially present in any file, including an
	// empty one, so the oracle stays satisfied throughout.
	e, _ := testEngine(t, "", "")
	d := testDriver(t, e, MethodBlanks, MethodParens, MethodShortenInts)

	err := d.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, e.Stats().MethodSuccesses(MethodBlanks))
	require.Equal(t, 0, e.Stats().MethodSuccesses(MethodParens))
}

func TestDriver_RejectedTrialLeavesBufferByteIdentical(t *testing.T) {
	t.Parallel()

	// Neither method finds anything to edit in a bare marker, and any
	// trial that did run against it would be rejected for removing the
	// marker -- either way the buffer comes back unchanged.
	e, _ := testEngine(t, "X", "X")
	before := e.Buffer().String()

	d := testDriver(t, e, MethodBlanks, MethodParens)
	err := d.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, before, e.Buffer().String())
}

func TestDriver_Run_RespectsContextCancellation(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "int main(void){int x; X; return 0;}", "X")
	d := testDriver(t, e, MethodBrackets)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx)
	require.NoError(t, err) // cooperative cancellation is not a failure
}

func TestDriver_MultipleMethods_RunInPriorityOrder(t *testing.T) {
	t.Parallel()

	e, _ := testEngine(t, "int x = 0x1ULL; int y  z; X", "X")
	d := testDriver(t, e, MethodAllBlanks, MethodShortenInts, MethodBlanks)

	err := d.Run(context.Background())
	require.NoError(t, err)
	require.Contains(t, e.Buffer().String(), "X")
}
