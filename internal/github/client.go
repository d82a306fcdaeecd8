// Package github provides a client for interacting with the GitHub issues API.
package github

import (
	"context"
)

// IssueInfo contains information about a tracker issue
// This is a simplified struct to avoid coupling to go-github library
type IssueInfo struct {
	Number int
	Title  string
	Labels []string
}

// CreateIssueOptions contains the fields for a new issue
type CreateIssueOptions struct {
	Title  string
	Body   string
	Labels []string
}

// IssueClient is an interface for issue tracker interactions.
// The reconciler depends only on this capability set, so it can be
// exercised against a scripted fake in tests.
type IssueClient interface {
	// ListOpenIssues returns all currently open issues
	ListOpenIssues(ctx context.Context) ([]IssueInfo, error)

	// AddLabel attaches a label to an issue
	AddLabel(ctx context.Context, number int, label string) error

	// CloseWithComment closes an issue, leaving an explanatory comment
	CloseWithComment(ctx context.Context, number int, comment string) error

	// CreateIssue creates a new issue
	CreateIssue(ctx context.Context, opts CreateIssueOptions) (*IssueInfo, error)

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}
