package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v62/github"
)

// ListOpenIssues lists all open issues in the repository.
// The issues endpoint also returns pull requests; those are filtered out.
func ListOpenIssues(ctx context.Context, client *github.Client, owner, repo string) ([]IssueInfo, error) {
	issues, _, err := client.Issues.ListByRepo(ctx, owner, repo, &github.IssueListByRepoOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list open issues: %w", err)
	}

	infos := make([]IssueInfo, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}
		infos = append(infos, toIssueInfo(issue))
	}

	return infos, nil
}

// AddLabel attaches a label to an issue
func AddLabel(ctx context.Context, client *github.Client, owner, repo string, number int, label string) error {
	_, _, err := client.Issues.AddLabelsToIssue(ctx, owner, repo, number, []string{label})
	if err != nil {
		return fmt.Errorf("failed to add label %q to issue #%d: %w", label, number, err)
	}
	return nil
}

// CloseWithComment leaves a comment on an issue and then closes it
func CloseWithComment(ctx context.Context, client *github.Client, owner, repo string, number int, comment string) error {
	if comment != "" {
		_, _, err := client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
			Body: github.String(comment),
		})
		if err != nil {
			return fmt.Errorf("failed to comment on issue #%d: %w", number, err)
		}
	}

	closed := "closed"
	_, _, err := client.Issues.Edit(ctx, owner, repo, number, &github.IssueRequest{
		State: &closed,
	})
	if err != nil {
		return fmt.Errorf("failed to close issue #%d: %w", number, err)
	}

	return nil
}

// CreateIssue creates a new issue
func CreateIssue(ctx context.Context, client *github.Client, owner, repo string, opts CreateIssueOptions) (*IssueInfo, error) {
	req := &github.IssueRequest{
		Title: github.String(opts.Title),
	}

	if opts.Body != "" {
		req.Body = github.String(opts.Body)
	}
	if len(opts.Labels) > 0 {
		labels := opts.Labels
		req.Labels = &labels
	}

	created, _, err := client.Issues.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	info := toIssueInfo(created)
	return &info, nil
}

// toIssueInfo converts a github.Issue to IssueInfo
func toIssueInfo(issue *github.Issue) IssueInfo {
	info := IssueInfo{}

	if issue.Number != nil {
		info.Number = *issue.Number
	}
	if issue.Title != nil {
		info.Title = *issue.Title
	}
	for _, label := range issue.Labels {
		if label.Name != nil {
			info.Labels = append(info.Labels, *label.Name)
		}
	}

	return info
}
