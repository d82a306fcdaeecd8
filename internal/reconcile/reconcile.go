package reconcile

import (
	"fmt"
	"time"

	"scopesync.dev/scopesync/internal/backlog"
	apperrors "scopesync.dev/scopesync/internal/errors"
	"scopesync.dev/scopesync/internal/github"
	"scopesync.dev/scopesync/internal/output"
	"scopesync.dev/scopesync/internal/runtime"
)

// Options contains options for the sync command
type Options struct {
	// DryRun computes and prints the plan without mutating the tracker
	DryRun bool

	// Force proceeds with creation even when the open-issue listing
	// failed. Without it a failed listing aborts the run, since an
	// empty snapshot would recreate every desired issue.
	Force bool

	// Confirm, when set, is asked before proceeding after a failed
	// listing. Wired to a survey prompt on a TTY, nil otherwise.
	Confirm func() (bool, error)
}

// Action performs the reconciliation: load backlog, list open issues,
// diff, close out-of-scope issues, create missing ones, report.
// Individual mutation failures are recorded and logged but never abort
// the run; only backlog load and (by default) the listing are fatal.
func Action(ctx *runtime.Context, opts Options) (*Report, error) {
	splog := ctx.Splog
	cfg := ctx.Config

	splog.Info("🔄 Syncing issue tracker with backlog...")

	doc, err := backlog.Load(cfg.BacklogPath)
	if err != nil {
		return nil, err
	}

	desired := doc.DesiredTitles()
	splog.Info("📋 Target scope: %d issues", len(desired))

	report := &Report{
		TotalDesired: len(desired),
		DryRun:       opts.DryRun,
	}

	current, err := ctx.Client.ListOpenIssues(ctx.Context)
	if err != nil {
		splog.Fail("Failed to list open issues: %v", err)
		if !proceedWithoutRemote(splog, opts) {
			return report, apperrors.NewAPICallError("list", "", err)
		}
		splog.Warn("Proceeding with an empty issue snapshot; existing issues may be duplicated")
		current = nil
	} else {
		report.RemoteListed = true
		splog.Info("📋 Current open issues: %d", len(current))
	}

	diff := Compute(doc, current)

	splog.Info("🔒 Issues to close/defer: %d", len(diff.ToClose))
	splog.Success("Issues already in scope: %d", len(diff.ExistingDesired))

	if opts.DryRun {
		printPlan(splog, diff)
		return report, nil
	}

	if len(diff.ToClose) > 0 {
		splog.Newline()
		splog.Info("🔒 Closing out-of-scope issues...")
		for _, issue := range diff.ToClose {
			report.Closed = append(report.Closed, closeWithLabel(ctx, issue))
			time.Sleep(cfg.CloseDelay)
		}
	}

	if len(diff.Missing) > 0 {
		splog.Newline()
		splog.Info("✨ Creating %d missing issues...", len(diff.Missing))
		for _, spec := range diff.Missing {
			report.Created = append(report.Created, createIssue(ctx, spec))
			time.Sleep(cfg.CreateDelay)
		}
	}

	printSummary(splog, report)
	return report, nil
}

// proceedWithoutRemote decides whether a run may continue after the
// listing failed: --force wins, otherwise an interactive confirm if one
// is wired, otherwise abort.
func proceedWithoutRemote(splog *output.Splog, opts Options) bool {
	if opts.Force {
		return true
	}
	if opts.Confirm == nil {
		splog.Tip("Re-run with --force to create issues against an empty snapshot anyway.")
		return false
	}
	ok, err := opts.Confirm()
	if err != nil {
		return false
	}
	return ok
}

// closeWithLabel applies the two-step close: attach the defer label,
// then close with an explanatory comment. The steps are not atomic and
// are not rolled back; a failed close after a successful label leaves
// the issue labeled but open.
func closeWithLabel(ctx *runtime.Context, issue github.IssueInfo) ItemResult {
	splog := ctx.Splog
	cfg := ctx.Config

	res := ItemResult{
		Title:     issue.Title,
		Number:    issue.Number,
		Attempted: true,
	}

	splog.Info("🔒 Closing issue #%d (marked as %s)", issue.Number, cfg.DeferLabel)

	if err := ctx.Client.AddLabel(ctx.Context, issue.Number, cfg.DeferLabel); err != nil {
		splog.Fail("Failed to label issue #%d: %v", issue.Number, err)
		res.Err = apperrors.NewAPICallError("add-label", fmt.Sprintf("#%d", issue.Number), err)
	} else {
		res.Labeled = true
	}

	if err := ctx.Client.CloseWithComment(ctx.Context, issue.Number, cfg.CloseComment()); err != nil {
		splog.Fail("Failed to close issue #%d: %v", issue.Number, err)
		res.Err = apperrors.NewAPICallError("close", fmt.Sprintf("#%d", issue.Number), err)
		return res
	}

	res.Succeeded = res.Labeled
	return res
}

// createIssue issues one creation call for a missing spec
func createIssue(ctx *runtime.Context, spec backlog.IssueSpec) ItemResult {
	splog := ctx.Splog

	res := ItemResult{
		Title:     spec.Title,
		Attempted: true,
	}

	created, err := ctx.Client.CreateIssue(ctx.Context, github.CreateIssueOptions{
		Title:  spec.Title,
		Body:   spec.Body,
		Labels: spec.Labels,
	})
	if err != nil {
		splog.Fail("Failed to create %q: %v", spec.Title, err)
		res.Err = apperrors.NewAPICallError("create", spec.Title, err)
		return res
	}

	if created != nil {
		res.Number = created.Number
	}
	res.Succeeded = true
	splog.Success("Created: %s", spec.Title)
	return res
}

// printPlan renders the dry-run plan without touching the tracker
func printPlan(splog *output.Splog, diff Diff) {
	splog.Newline()
	for _, issue := range diff.ToClose {
		splog.Info("  would close #%d %s", issue.Number, issue.Title)
	}
	for _, spec := range diff.Missing {
		splog.Info("  would create %s", spec.Title)
	}
	if len(diff.ToClose) == 0 && len(diff.Missing) == 0 {
		splog.Info("  nothing to do, tracker matches the backlog")
	}
}

// printSummary renders the final run summary. It is always printed,
// regardless of how many individual mutations failed.
func printSummary(splog *output.Splog, report *Report) {
	splog.Newline()
	splog.Info("🎉 Backlog sync complete!")
	splog.Info("   • Closed/deferred: %s of %s attempted",
		output.ColorCount(fmt.Sprintf("%d", report.ClosedSucceeded())),
		output.ColorCount(fmt.Sprintf("%d", len(report.Closed))))
	splog.Info("   • Created: %s of %s attempted",
		output.ColorCount(fmt.Sprintf("%d", report.CreatedSucceeded())),
		output.ColorCount(fmt.Sprintf("%d", len(report.Created))))
	splog.Info("   • Total desired issues: %s",
		output.ColorCount(fmt.Sprintf("%d", report.TotalDesired)))

	if failures := report.Failures(); len(failures) > 0 {
		splog.Warn("%s", output.ColorWarn(fmt.Sprintf("%d operations failed; the tracker may not fully match the backlog", len(failures))))
		for _, res := range failures {
			splog.Info("   %s", output.ColorDim(res.Err.Error()))
		}
	}

	splog.Newline()
	splog.Tip("Review closed issues with: gh issue list --state=closed")
}
