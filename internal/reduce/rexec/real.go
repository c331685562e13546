package rexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrOracleNotExecutable is returned by [Real.CheckExecutable] when the
// oracle script exists but lacks the executable bit, per spec.md §7.1.
var ErrOracleNotExecutable = errors.New("oracle script is not executable")

// ErrOracleNotFound is returned by [Real.CheckExecutable] when the oracle
// script does not exist.
var ErrOracleNotFound = errors.New("oracle script not found")

// Real invokes real subprocesses via [os/exec].
type Real struct{}

// NewReal returns a [Real] runner.
func NewReal() *Real {
	return &Real{}
}

func (r *Real) CheckExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOracleNotFound, path)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrOracleNotExecutable, path)
	}

	if unix.Access(path, unix.X_OK) != nil {
		return fmt.Errorf("%w: %s", ErrOracleNotExecutable, path)
	}

	return nil
}

// RunOracle invokes "./<path>" per spec.md §6: no arguments, no stdin,
// stdout/stderr discarded, exit 0 means "interesting".
func (r *Real) RunOracle(ctx context.Context, path string) (bool, error) {
	invoke := path
	if !filepath.IsAbs(invoke) {
		invoke = "./" + invoke
	}

	cmd := exec.CommandContext(ctx, invoke)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}

	return false, fmt.Errorf("invoking oracle %s: %w", path, err)
}

// RunIndent invokes the external pretty-printer in place on file.
func (r *Real) RunIndent(ctx context.Context, path string, args []string, file string) error {
	cmdArgs := append(append([]string(nil), args...), file)
	cmd := exec.CommandContext(ctx, path, cmdArgs...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("invoking indent %s: %w", path, err)
	}

	return nil
}

var _ Runner = (*Real)(nil)
