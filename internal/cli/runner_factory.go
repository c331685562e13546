package cli

import "creduce/internal/reduce/rexec"

// NewProductionRunner is the [RunnerFactory] cmd/creduce wires up: a real
// subprocess runner (oracle script, external pretty-printer), optionally
// wrapped in the interactive accept/reject stepper when interactive is
// true.
func NewProductionRunner(interactive bool) rexec.Runner {
	real := rexec.NewReal()
	if !interactive {
		return real
	}

	return newInteractiveRunner(real)
}
