package catalog

// Reduce applies one action to a collection and returns the result.
//
// Reduce is pure and total: it never mutates its input, never performs
// I/O, and never fails. Actions that cannot apply (unknown ID, nil or
// unrecognized action) return the input collection unchanged.
func Reduce(c Collection, a Action) Collection {
	next, _ := Apply(c, a)
	return next
}

// Apply is Reduce plus an applied report. applied is false exactly when
// the action was a no-op and the input collection was returned as-is. The
// session uses this to issue one persistence write per accepted change
// and none for no-ops.
func Apply(c Collection, a Action) (next Collection, applied bool) {
	switch act := a.(type) {
	case Add:
		next = make(Collection, len(c)+1)
		copy(next, c)
		next[len(c)] = act.Record
		return next, true

	case Delete:
		i := c.IndexOf(act.ID)
		if i < 0 {
			return c, false
		}
		next = make(Collection, 0, len(c)-1)
		next = append(next, c[:i]...)
		next = append(next, c[i+1:]...)
		return next, true

	case Edit:
		i := c.IndexOf(act.ID)
		if i < 0 {
			return c, false
		}
		next = make(Collection, len(c))
		copy(next, c)
		rec := act.Record
		rec.ID = c[i].ID // identity is immutable, edits cannot reassign it
		next[i] = rec
		return next, true

	default:
		return c, false
	}
}
