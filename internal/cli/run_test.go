package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"creduce/internal/cli"
	"creduce/internal/reduce/rexec"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("--help")

	cli.AssertContains(t, stdout, "creduce - a C-aware delta-debugging source reducer")
	cli.AssertContains(t, stdout, "Usage:")
}

func TestRun_MissingPositionalArgs(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--blanks")

	cli.AssertContains(t, stderr, "expected exactly <oracle_script> <cfile>")
}

func TestRun_NoMethodsEnabled(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	cfile := c.WriteCFile("t.c", "int main(void) { return 0; }\n")

	stderr := c.MustFail(c.OraclePath(), cfile)
	cli.AssertContains(t, stderr, "no methods enabled")
}

func TestRun_UnknownMethodFlag(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	cfile := c.WriteCFile("t.c", "int main(void) { return 0; }\n")

	_, stderr, code := c.Run(c.OraclePath(), cfile, "--bogus-method")
	require.NotEqual(t, 0, code)
	cli.AssertContains(t, stderr, "unknown flag")
}

func TestRun_AllFlag_ReducesToFixpoint(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	cfile := c.WriteCFile("t.c", "int main(void) {\n    int x = 1;\n    return 0;\n}\n")

	c.Interesting = func(data []byte) bool {
		return bytes.Contains(data, []byte("main"))
	}

	stdout := c.MustRun(c.OraclePath(), cfile, "--all")
	cli.AssertContains(t, stdout, "done:")

	final, err := os.ReadFile(cfile)
	require.NoError(t, err)
	require.Contains(t, string(final), "main")
}

func TestRun_StatsJSON_Written(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	cfile := c.WriteCFile("t.c", "int main(void) {\n    int x = 1;\n    return 0;\n}\n")

	c.Interesting = func(data []byte) bool {
		return bytes.Contains(data, []byte("main"))
	}

	statsPath := filepath.Join(c.Dir, "stats.json")
	c.MustRun(c.OraclePath(), cfile, "--all", "--stats-json", statsPath)

	data, err := os.ReadFile(statsPath)
	require.NoError(t, err)

	var snap struct {
		OrigLength       int     `json:"orig_length"`
		FinalLength      int     `json:"final_length"`
		PercentReduction float64 `json:"percent_reduction"`
	}
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Greater(t, snap.OrigLength, 0)
	require.LessOrEqual(t, snap.FinalLength, snap.OrigLength)
}

func TestRun_OracleNotExecutable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfile := filepath.Join(dir, "t.c")
	require.NoError(t, os.WriteFile(cfile, []byte("int main(void) { return 0; }\n"), 0o644))

	var outBuf, errBuf bytes.Buffer

	code := cli.Run(nil, &outBuf, &errBuf, []string{"creduce", "oracle.sh", cfile, "--blanks"}, map[string]string{}, nil,
		func(bool) rexec.Runner { return &rexec.Fake{NotExecutable: true} })

	require.Equal(t, 1, code)
	cli.AssertContains(t, errBuf.String(), "not executable")
}
