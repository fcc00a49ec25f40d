package harness

// TraceEvent records one executed step for the trace. Steps that did not
// change the collection (out-of-range delete, same-term search) carry
// Applied=false.
type TraceEvent struct {
	Seq     int64             `json:"seq"`
	Op      string            `json:"op"`
	Applied bool              `json:"applied"`
	Detail  map[string]string `json:"detail,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success. True if every assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per executed step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains assertion failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Final is the final full collection, wire fields only.
	Final []RecordSpec `json:"final"`

	// SaveCount is how many saves reached the store during the run.
	SaveCount int `json:"save_count"`
}

// NewResult creates a new passing result, the starting point for a run.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError records an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends one step event to the trace.
func (r *Result) AddTrace(seq int64, op string, applied bool, detail map[string]string) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:     seq,
		Op:      op,
		Applied: applied,
		Detail:  detail,
	})
}
