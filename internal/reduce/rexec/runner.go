// Package rexec abstracts the two external processes the reduction engine
// invokes: the oracle script and the (optional) pretty-printer used by the
// indent method. Keeping both behind an interface lets the engine be
// tested without a real oracle binary on disk.
package rexec

import "context"

// Runner invokes the external collaborators spec.md §1 calls out as
// out-of-scope for the core: the oracle script and the pretty-printer.
type Runner interface {
	// CheckExecutable validates that path exists and is executable,
	// returning a descriptive error otherwise (spec.md §7.1: "missing/
	// non-executable oracle script abort with a usage message").
	CheckExecutable(path string) error

	// RunOracle invokes "./<path>" with no arguments and no stdin,
	// discarding stdout/stderr, and reports whether it exited 0
	// ("interesting", spec.md §4.2).
	RunOracle(ctx context.Context, path string) (interesting bool, err error)

	// RunIndent invokes the external pretty-printer at path against file
	// with the given option flags (spec.md §4.4, method "indent").
	RunIndent(ctx context.Context, path string, args []string, file string) error
}
