package reduce

import "errors"

// Sentinel errors for the reduction engine, grouped by concern as in the
// teacher's internal/ticket/errors.go.
var (
	// ErrUnknownMethod is returned when a method name does not appear in
	// the registry (spec.md §6: "Unknown method names... abort").
	ErrUnknownMethod = errors.New("unknown method")

	// ErrNoMethodsEnabled is returned when neither --all nor any
	// --<method> flag was given.
	ErrNoMethodsEnabled = errors.New("no methods enabled")

	// ErrSanityCheckFailed is the diagnostic for spec.md §7.3: the oracle
	// rejected the current backup file at the start of a pass.
	ErrSanityCheckFailed = errors.New("sanity check failed: oracle rejects current backup")

	// ErrContractViolation is spec.md §7.4: a method tagged non-enlarging
	// produced a longer buffer and the oracle accepted it.
	ErrContractViolation = errors.New("method contract violation: non-enlarging method grew the buffer")
)
