// Package reconcile computes and applies the difference between the
// desired backlog and the tracker's open issues.
package reconcile

import (
	"scopesync.dev/scopesync/internal/backlog"
	"scopesync.dev/scopesync/internal/github"
)

// Diff partitions the current open issues against the desired backlog.
// Matching is by byte-equal title only; issue numbers play no part in
// identity.
type Diff struct {
	// ExistingDesired are open issues whose title appears in the backlog
	ExistingDesired []github.IssueInfo

	// ToClose are open issues not in the backlog, in tracker-returned order
	ToClose []github.IssueInfo

	// Missing are backlog specs with no matching open issue, in
	// declaration order
	Missing []backlog.IssueSpec
}

// Compute partitions current issues and desired specs. Pure function:
// the inputs are not mutated and ordering of both inputs is preserved,
// which keeps run logs deterministic and reviewable.
func Compute(doc *backlog.Document, current []github.IssueInfo) Diff {
	desired := make(map[string]bool)
	for _, title := range doc.DesiredTitles() {
		desired[title] = true
	}

	var diff Diff
	currentTitles := make(map[string]bool, len(current))
	for _, issue := range current {
		currentTitles[issue.Title] = true
		if desired[issue.Title] {
			diff.ExistingDesired = append(diff.ExistingDesired, issue)
		} else {
			diff.ToClose = append(diff.ToClose, issue)
		}
	}

	for _, spec := range doc.SpecsInOrder() {
		if !currentTitles[spec.Title] {
			diff.Missing = append(diff.Missing, spec)
		}
	}

	return diff
}
