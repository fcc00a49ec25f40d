package catalog

// Action is a request to transition the collection. The set of actions is
// closed: Add, Delete, Edit. The reducer treats anything else (including a
// nil Action) as a no-op, which keeps Reduce total.
type Action interface {
	isAction()
}

// Add appends Record to the end of the collection. Add always succeeds.
// The record's ID should already be stamped by the caller (the session
// assigns IDs at dispatch time so the reducer stays pure).
type Add struct {
	Record BookRecord
}

// Delete removes the record with the given ID. An unknown ID is a silent
// no-op: the only callers resolve IDs from the collection they are about
// to mutate, so a miss means the record is already gone.
type Delete struct {
	ID string
}

// Edit replaces the record with the given ID in place. The stored ID is
// preserved regardless of what Record.ID says; identity is immutable.
// Unknown IDs no-op, same policy as Delete.
type Edit struct {
	ID     string
	Record BookRecord
}

func (Add) isAction()    {}
func (Delete) isAction() {}
func (Edit) isAction()   {}
