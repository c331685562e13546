package reduce

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"creduce/internal/reduce/rexec"
	"creduce/internal/rfs"
)

func testEngineWithIndent(t *testing.T, content, marker string, indent func(data []byte) []byte) *Engine {
	t.Helper()

	fsys := rfs.NewFake()
	fsys.Seed("t.c", []byte(content))

	runner := &rexec.Fake{
		Interesting: func(data []byte) bool { return bytes.Contains(data, []byte(marker)) },
		ReadFile:    fsys.ReadFile,
		WriteFile:   func(path string, data []byte) error { return fsys.WriteFile(path, data, 0o644) },
		Indent:      indent,
	}

	e, err := NewEngine(EngineConfig{
		FS:           fsys,
		Runner:       runner,
		OracleScript: "oracle.sh",
		IndentPath:   "indent",
		Paths: Paths{
			CFile:   "t.c",
			Backup:  "t.c.bak",
			Orig:    "t.c.orig",
			DirBase: ".",
		},
	})
	require.NoError(t, err)

	return e
}

func TestIndent_AcceptsReformattedOutput(t *testing.T) {
	t.Parallel()

	e := testEngineWithIndent(t, "int x; X;", "X", func(data []byte) []byte {
		return append([]byte("int   x; X;"), nil...)
	})

	pos := 0
	m := newIndentMethod()
	worked := m.tryAt(context.Background(), e, &pos)

	require.True(t, worked)
	require.Equal(t, " int   x; X; ", e.Buffer().String())
}

func TestIndent_NoOp_WhenPosNotZero(t *testing.T) {
	t.Parallel()

	e := testEngineWithIndent(t, "int x; X;", "X", func(data []byte) []byte {
		return []byte("reformatted")
	})

	pos := 3
	m := newIndentMethod()
	worked := m.tryAt(context.Background(), e, &pos)
	require.False(t, worked)
}

func TestIndent_NoOp_WhenOutputUnchanged(t *testing.T) {
	t.Parallel()

	content := "int x; X;"
	e := testEngineWithIndent(t, content, "X", func(data []byte) []byte {
		return data // pretty-printer reports no change
	})

	pos := 0
	m := newIndentMethod()
	worked := m.tryAt(context.Background(), e, &pos)
	require.False(t, worked)
	require.Equal(t, " "+content+" ", e.Buffer().String())
}

func TestIndent_RejectsWhenNoLongerInteresting(t *testing.T) {
	t.Parallel()

	e := testEngineWithIndent(t, "int x; X;", "X", func(data []byte) []byte {
		return []byte("int x; no marker here")
	})

	before := e.Buffer().String()

	pos := 0
	m := newIndentMethod()
	worked := m.tryAt(context.Background(), e, &pos)
	require.False(t, worked)
	require.Equal(t, before, e.Buffer().String())
}
