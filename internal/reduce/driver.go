package reduce

import "context"

// Driver runs reduction to a fixpoint: a per-method pass sweeping pos
// from 0 to the end of the buffer, and an outer loop that re-runs all
// enabled methods in priority order until one full round accepts zero
// edits anywhere.
type Driver struct {
	engine   *Engine
	registry *Registry
	methods  []*Method
}

// NewDriver returns a [Driver] over the given enabled methods, already
// sorted by priority (see [Registry.Enabled]).
func NewDriver(engine *Engine, methods []*Method) *Driver {
	return &Driver{engine: engine, methods: methods}
}

// Run drives reduction to a fixpoint: it loops over enabled methods in
// ascending priority until a full outer round records zero accepted
// edits across all methods, then returns. ctx cancellation stops the
// driver after the in-flight trial completes, leaving the engine's
// invariants intact (the backup always holds the last oracle-accepted
// state).
func (d *Driver) Run(ctx context.Context) error {
	outerPass := 0

	for {
		outerPass++

		if err := d.engine.SnapshotPass(outerPass); err != nil {
			return err
		}

		anyAccepted := false

		for _, m := range d.methods {
			if err := ctx.Err(); err != nil {
				return nil // cooperative cancellation, not a failure
			}

			accepted, err := d.runPass(ctx, m, outerPass)
			if err != nil {
				return err
			}

			if accepted {
				anyAccepted = true
			}
		}

		if !anyAccepted {
			return nil
		}
	}
}

// runPass runs one method's pass over the whole buffer:
//
//	pos = 0; success = failure = 0; funcs_seen = {}
//	sanity_check()
//	while pos < buffer.len():
//	    worked = method.try_at(pos)
//	    if not worked: pos += 1
//	return success > 0
func (d *Driver) runPass(ctx context.Context, m *Method, outerPass int) (anyAccepted bool, err error) {
	d.engine.reporter.PassStart(outerPass, m.name)

	if err := d.engine.SanityCheck(ctx); err != nil {
		return false, err
	}

	d.engine.ResetFuncsSeen()

	before := d.engine.Stats().MethodSuccesses(m.name)

	pos := 0
	for pos < d.engine.Buffer().Len() {
		if err := ctx.Err(); err != nil {
			break
		}

		posBefore := pos

		worked := m.tryAt(ctx, d.engine, &pos)

		// A fatal error surfaces through lastFatal, since tryAt's
		// signature returns only a bool.
		if d.engine.lastFatal != nil {
			return false, d.engine.lastFatal
		}

		if !worked && pos == posBefore {
			pos++
		}
	}

	after := d.engine.Stats().MethodSuccesses(m.name)

	return after > before, nil
}
