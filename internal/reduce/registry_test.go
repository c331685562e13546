package reduce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllMethodNames_MatchesCanonicalPriority(t *testing.T) {
	t.Parallel()

	names := AllMethodNames()
	require.Len(t, names, len(canonicalPriority))

	for _, n := range names {
		_, ok := canonicalPriority[n]
		require.True(t, ok, n)
	}
}

func TestAllMethodNames_SortedByPriorityThenName(t *testing.T) {
	t.Parallel()

	names := AllMethodNames()

	for i := 1; i < len(names); i++ {
		prev, cur := canonicalPriority[names[i-1]], canonicalPriority[names[i]]
		require.True(t, prev < cur || (prev == cur && names[i-1] < names[i]))
	}
}

func TestRegistry_Enabled_SortsByPriority(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	methods, err := r.Enabled([]string{MethodIndent, MethodAllBlanks, MethodParens})
	require.NoError(t, err)
	require.Len(t, methods, 3)
	require.Equal(t, MethodAllBlanks, methods[0].Name())
	require.Equal(t, MethodParens, methods[1].Name())
	require.Equal(t, MethodIndent, methods[2].Name())
}

func TestRegistry_Enabled_UnknownMethod(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, err := r.Enabled([]string{"not_a_real_method"})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	m, ok := r.Lookup(MethodCRC)
	require.True(t, ok)
	require.Equal(t, MethodCRC, m.Name())
	require.Equal(t, 1, m.Priority())

	_, ok = r.Lookup("nope")
	require.False(t, ok)
}
