package rexec

import (
	"context"
	"errors"
)

// Fake is an in-memory [Runner] for tests. It reads the working file via
// the supplied rfs.FS-backed reader function, so tests never touch a real
// oracle binary or pretty-printer.
type Fake struct {
	// Interesting classifies file contents the same way a real oracle
	// script classifies a file: true means exit 0.
	Interesting func(data []byte) bool

	// ReadFile loads the current contents of the working file for the
	// oracle decision; wired to the same rfs.FS the harness uses.
	ReadFile func(path string) ([]byte, error)

	// Indent, if set, is applied to the working file's contents and
	// written back via WriteFile. If nil, RunIndent is a no-op.
	Indent func(data []byte) []byte

	// WriteFile writes back indent's output.
	WriteFile func(path string, data []byte) error

	// NotExecutable makes CheckExecutable fail, for testing the
	// configuration-error path.
	NotExecutable bool

	OracleCalls int
	IndentCalls int
}

func (f *Fake) CheckExecutable(_ string) error {
	if f.NotExecutable {
		return ErrOracleNotExecutable
	}

	return nil
}

func (f *Fake) RunOracle(_ context.Context, path string) (bool, error) {
	f.OracleCalls++

	if f.ReadFile == nil || f.Interesting == nil {
		return false, errors.New("fake oracle misconfigured")
	}

	data, err := f.ReadFile(path)
	if err != nil {
		return false, err
	}

	return f.Interesting(data), nil
}

func (f *Fake) RunIndent(_ context.Context, _ string, _ []string, file string) error {
	f.IndentCalls++

	if f.Indent == nil {
		return nil
	}

	data, err := f.ReadFile(file)
	if err != nil {
		return err
	}

	return f.WriteFile(file, f.Indent(data))
}

var _ Runner = (*Fake)(nil)
