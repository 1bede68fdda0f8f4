package parser

// loopProgress makes every repeating-list loop total. Each call to Evaluate
// records the cursor's position; if a later call sees the same position, a
// recovery branch consumed nothing and the loop is forced to terminate
// instead of spinning. It never emits a diagnostic.
//
// Every loop whose termination predicate is derived from lookahead must be
// wired through one of these.
type loopProgress struct {
	last    int
	started bool
}

// Evaluate reports whether the loop may run another iteration.
func (lp *loopProgress) Evaluate(c *Cursor) bool {
	if lp.started && c.Pos() == lp.last {
		return false
	}
	lp.started = true
	lp.last = c.Pos()
	return true
}
