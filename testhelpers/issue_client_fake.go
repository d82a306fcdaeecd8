package testhelpers

import (
	"context"
	"sync"

	githubpkg "scopesync.dev/scopesync/internal/github"
)

// FakeIssueClient is a scripted in-memory IssueClient for orchestrator
// tests. Each operation can be overridden per test; unset operations
// succeed against the in-memory state.
type FakeIssueClient struct {
	mu sync.Mutex

	Open []githubpkg.IssueInfo

	// Overrides; when nil the default in-memory behavior applies
	ListFunc   func(ctx context.Context) ([]githubpkg.IssueInfo, error)
	LabelFunc  func(ctx context.Context, number int, label string) error
	CloseFunc  func(ctx context.Context, number int, comment string) error
	CreateFunc func(ctx context.Context, opts githubpkg.CreateIssueOptions) (*githubpkg.IssueInfo, error)

	// Recorded calls
	Labeled  map[int][]string
	Closed   []int
	Comments map[int][]string
	Created  []githubpkg.CreateIssueOptions

	nextNumber int
}

// NewFakeIssueClient creates an empty fake client
func NewFakeIssueClient(open ...githubpkg.IssueInfo) *FakeIssueClient {
	return &FakeIssueClient{
		Open:       open,
		Labeled:    make(map[int][]string),
		Comments:   make(map[int][]string),
		nextNumber: 1000,
	}
}

// GetOwnerRepo returns a fixed owner and repo
func (f *FakeIssueClient) GetOwnerRepo() (string, string) {
	return "owner", "repo"
}

// ListOpenIssues returns the scripted open issues
func (f *FakeIssueClient) ListOpenIssues(ctx context.Context) ([]githubpkg.IssueInfo, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	issues := make([]githubpkg.IssueInfo, len(f.Open))
	copy(issues, f.Open)
	return issues, nil
}

// AddLabel records the label
func (f *FakeIssueClient) AddLabel(ctx context.Context, number int, label string) error {
	if f.LabelFunc != nil {
		if err := f.LabelFunc(ctx, number, label); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Labeled[number] = append(f.Labeled[number], label)
	return nil
}

// CloseWithComment records the close and removes the issue from the open set
func (f *FakeIssueClient) CloseWithComment(ctx context.Context, number int, comment string) error {
	if f.CloseFunc != nil {
		if err := f.CloseFunc(ctx, number, comment); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = append(f.Closed, number)
	f.Comments[number] = append(f.Comments[number], comment)
	for i, issue := range f.Open {
		if issue.Number == number {
			f.Open = append(f.Open[:i], f.Open[i+1:]...)
			break
		}
	}
	return nil
}

// CreateIssue records the creation and adds the issue to the open set
func (f *FakeIssueClient) CreateIssue(ctx context.Context, opts githubpkg.CreateIssueOptions) (*githubpkg.IssueInfo, error) {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, opts)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, opts)
	f.nextNumber++
	info := githubpkg.IssueInfo{
		Number: f.nextNumber,
		Title:  opts.Title,
		Labels: opts.Labels,
	}
	f.Open = append(f.Open, info)
	return &info, nil
}
