package reconcile

// ItemResult records the outcome of one mutation against the tracker.
// Attempted and Succeeded are tracked separately so the summary can
// distinguish actions tried from actions confirmed.
type ItemResult struct {
	Title  string
	Number int

	Attempted bool
	Succeeded bool

	// Labeled reports whether the label step of a close succeeded.
	// Label-then-close is not atomic: a failed close after a successful
	// label leaves the issue labeled but open.
	Labeled bool

	Err error
}

// Report aggregates the outcome of a reconciliation run
type Report struct {
	// TotalDesired is the number of distinct backlog titles
	TotalDesired int

	// RemoteListed reports whether the open-issue listing succeeded
	RemoteListed bool

	// DryRun reports whether mutations were skipped
	DryRun bool

	Closed  []ItemResult
	Created []ItemResult
}

// ClosedSucceeded counts closes that fully succeeded (label and close)
func (r *Report) ClosedSucceeded() int {
	return countSucceeded(r.Closed)
}

// CreatedSucceeded counts creates that succeeded
func (r *Report) CreatedSucceeded() int {
	return countSucceeded(r.Created)
}

// Failures returns every item result that was attempted but failed
func (r *Report) Failures() []ItemResult {
	var failed []ItemResult
	for _, res := range append(append([]ItemResult{}, r.Closed...), r.Created...) {
		if res.Attempted && !res.Succeeded {
			failed = append(failed, res)
		}
	}
	return failed
}

func countSucceeded(results []ItemResult) int {
	n := 0
	for _, res := range results {
		if res.Succeeded {
			n++
		}
	}
	return n
}
