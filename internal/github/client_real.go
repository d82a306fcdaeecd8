package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v62/github"
)

// RealIssueClient implements IssueClient using the real GitHub API
type RealIssueClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewRealIssueClient creates a new RealIssueClient for the repository
// the current working directory belongs to
func NewRealIssueClient(ctx context.Context) (*RealIssueClient, error) {
	token, err := getGitHubToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	repoInfo, err := getRepoInfoWithHostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	client, err := createGitHubClient(ctx, repoInfo.Hostname, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &RealIssueClient{
		client: client,
		owner:  repoInfo.Owner,
		repo:   repoInfo.Repo,
	}, nil
}

// NewIssueClientFor wraps an existing go-github client. Used by tests
// and by callers that resolve owner/repo themselves.
func NewIssueClientFor(client *github.Client, owner, repo string) *RealIssueClient {
	return &RealIssueClient{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

// GetOwnerRepo returns the repository owner and name
func (c *RealIssueClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// ListOpenIssues returns all currently open issues
func (c *RealIssueClient) ListOpenIssues(ctx context.Context) ([]IssueInfo, error) {
	return ListOpenIssues(ctx, c.client, c.owner, c.repo)
}

// AddLabel attaches a label to an issue
func (c *RealIssueClient) AddLabel(ctx context.Context, number int, label string) error {
	return AddLabel(ctx, c.client, c.owner, c.repo, number, label)
}

// CloseWithComment closes an issue, leaving an explanatory comment
func (c *RealIssueClient) CloseWithComment(ctx context.Context, number int, comment string) error {
	return CloseWithComment(ctx, c.client, c.owner, c.repo, number, comment)
}

// CreateIssue creates a new issue
func (c *RealIssueClient) CreateIssue(ctx context.Context, opts CreateIssueOptions) (*IssueInfo, error) {
	return CreateIssue(ctx, c.client, c.owner, c.repo, opts)
}
