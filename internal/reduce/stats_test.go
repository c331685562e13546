package reduce

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStats_RecordMethod_And_PercentReduction(t *testing.T) {
	t.Parallel()

	s := NewStats(100)
	s.RecordMethod("blanks", true)
	s.RecordMethod("blanks", true)
	s.RecordMethod("blanks", false)

	require.Equal(t, 2, s.MethodSuccesses("blanks"))
	require.Equal(t, 1, s.MethodFailures("blanks"))

	require.InDelta(t, 25.0, s.PercentReduction(75), 0.001)
	require.Equal(t, 0.0, s.PercentReduction(100))
	require.Equal(t, 0.0, s.PercentReduction(120)) // enlargement never reports negative
}

func TestStats_PercentReduction_ZeroOrigLength(t *testing.T) {
	t.Parallel()

	s := NewStats(0)
	require.Equal(t, 0.0, s.PercentReduction(0))
}

func TestStats_Snapshot(t *testing.T) {
	t.Parallel()

	s := NewStats(50)
	s.RecordMethod("parens", true)
	s.RecordMethod("ternary", false)

	snap := s.Snapshot(40)
	require.Equal(t, 50, snap.OrigLength)
	require.Equal(t, 40, snap.FinalLength)
	require.InDelta(t, 20.0, snap.PercentReduction, 0.001)
	require.Len(t, snap.Methods, 2)
	require.Equal(t, "parens", snap.Methods[0].Method)
	require.Equal(t, "ternary", snap.Methods[1].Method)
}

// TestStats_Snapshot_ExactShape does a full structural comparison of the
// JSON snapshot against a literal, the way the teacher's
// testutil.CompareState does exhaustive state comparisons with cmp.Diff
// rather than field-by-field require.Equal assertions.
func TestStats_Snapshot_ExactShape(t *testing.T) {
	t.Parallel()

	s := NewStats(50)
	s.RecordMethod("parens", true)
	s.RecordMethod("parens", false)
	s.RecordMethod("ternary", false)
	s.SetCacheHits(3)

	got := s.Snapshot(40)
	want := Snapshot{
		Methods: []MethodSnapshot{
			{Method: "parens", Success: 1, Failure: 1},
			{Method: "ternary", Success: 0, Failure: 1},
		},
		OrigLength:       50,
		FinalLength:      40,
		PercentReduction: 20,
		CacheHits:        3,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestStats_Report_ListsMethodRuleAndFinalLine(t *testing.T) {
	t.Parallel()

	s := NewStats(10)
	s.RecordMethod("blanks", true)
	s.RecordRule("replace_regex", 0, "delete-semi", true)

	var buf bytes.Buffer
	s.Report(&buf, 8)

	out := buf.String()
	require.Contains(t, out, "blanks")
	require.Contains(t, out, "delete-semi")
	require.Contains(t, out, "final: 10 -> 8 bytes")
}
