package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/peterh/liner"

	"creduce/internal/reduce/rexec"
)

// interactiveRunner wraps a [rexec.Runner] so a human can step through
// the reduction by hand: after every oracle invocation, before the
// verdict is used, it prompts accept/reject/auto on a line-edited prompt (grounded on the teacher's
// cmd/sloty REPL, which drives the same liner.State pattern). "auto"
// switches the remainder of the run back to the wrapped runner's
// verdicts with no further prompting.
//
// This is purely additive (SPEC_FULL.md, "Supplemented features"): the
// default, non-interactive path never touches this type.
type interactiveRunner struct {
	rexec.Runner

	line *liner.State
	auto bool
}

// newInteractiveRunner wraps next with an interactive accept/reject
// prompt. Callers must call Close when the run finishes.
func newInteractiveRunner(next rexec.Runner) *interactiveRunner {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	return &interactiveRunner{Runner: next, line: line}
}

// Close releases the underlying liner state.
func (r *interactiveRunner) Close() error {
	return r.line.Close()
}

// RunOracle asks the wrapped runner for the real verdict, then lets the
// human override it unless "auto" has already been selected.
func (r *interactiveRunner) RunOracle(ctx context.Context, path string) (bool, error) {
	interesting, err := r.Runner.RunOracle(ctx, path)
	if err != nil || r.auto {
		return interesting, err
	}

	for {
		verdict := "uninteresting"
		if interesting {
			verdict = "interesting"
		}

		answer, promptErr := r.line.Prompt(fmt.Sprintf("oracle says %s on %s -- accept/reject/auto/quit? ", verdict, path))
		if promptErr != nil {
			// EOF or Ctrl-C: fall back to the oracle's own verdict.
			return interesting, nil
		}

		r.line.AppendHistory(answer)

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "a", "accept":
			return true, nil
		case "r", "reject":
			return false, nil
		case "auto":
			r.auto = true
			return interesting, nil
		case "q", "quit":
			return false, context.Canceled
		default:
			fmt.Println("please answer accept, reject, auto, or quit")
		}
	}
}

var _ rexec.Runner = (*interactiveRunner)(nil)
