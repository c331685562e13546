package reduce

import (
	"fmt"
	"io"
)

// Reporter receives progress notifications from the driver, kept behind
// an interface so the output format is pluggable (internal/cli picks
// [TextReporter] or [NullReporter] from its --verbose flag).
type Reporter interface {
	// PassStart is called once per method pass, before the sanity check.
	PassStart(outerPass int, method string)

	// Trial is called after every trial, accepted or rejected.
	Trial(outerPass int, method string, pos, length int, success, failure int, accepted bool, percentReduction float64)

	// Finished is called once, after the outer loop reaches a fixpoint.
	Finished(stats *Stats, finalLength int)
}

// TextReporter writes one line per trial to W: pass number, method,
// (pos/len), running success/failure counts, and on acceptance the
// percent reduction relative to the original length.
type TextReporter struct {
	W io.Writer
}

func (r *TextReporter) PassStart(outerPass int, method string) {
	fmt.Fprintf(r.W, "=== pass %d: %s ===\n", outerPass, method)
}

func (r *TextReporter) Trial(outerPass int, method string, pos, length, success, failure int, accepted bool, percentReduction float64) {
	if accepted {
		fmt.Fprintf(r.W, "pass %d %-16s (%d/%d) s=%d f=%d accept (%.1f%% reduced)\n",
			outerPass, method, pos, length, success, failure, percentReduction)
		return
	}

	fmt.Fprintf(r.W, "pass %d %-16s (%d/%d) s=%d f=%d reject\n", outerPass, method, pos, length, success, failure)
}

func (r *TextReporter) Finished(stats *Stats, finalLength int) {
	stats.Report(r.W, finalLength)
}

// NullReporter discards all progress notifications; used by tests.
type NullReporter struct{}

func (NullReporter) PassStart(int, string)                                 {}
func (NullReporter) Trial(int, string, int, int, int, int, bool, float64)  {}
func (NullReporter) Finished(*Stats, int)                                  {}

var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = NullReporter{}
)
