package reduce

import "fmt"

// FatalError wraps the four fatal categories of spec.md §7 (configuration
// errors, I/O errors, sanity-check failure, contract violation) so
// internal/cli can print a diagnostic and exit nonzero without a type
// switch over sentinels. Oracle rejection of a trial (category 6) is never
// wrapped here; it is the expected, silent outcome that drives the search.
type FatalError struct {
	Err error
}

func (f *FatalError) Error() string {
	return fmt.Sprintf("fatal: %s", f.Err)
}

func (f *FatalError) Unwrap() error {
	return f.Err
}

// fatal wraps err as a [FatalError].
func fatal(err error) *FatalError {
	return &FatalError{Err: err}
}

func fatalf(format string, args ...any) *FatalError {
	return &FatalError{Err: fmt.Errorf(format, args...)}
}
