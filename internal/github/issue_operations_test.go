package github_test

import (
	"context"
	"testing"

	gogithub "github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/require"

	githubpkg "scopesync.dev/scopesync/internal/github"
	"scopesync.dev/scopesync/testhelpers"
)

func TestListOpenIssues(t *testing.T) {
	t.Run("lists open issues with labels", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddOpenIssue(1, "Add login", "v0.1", "auth")
		config.AddOpenIssue(2, "Set up CI")
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		issues, err := githubpkg.ListOpenIssues(context.Background(), client, owner, repo)
		require.NoError(t, err)
		require.Len(t, issues, 2)
		require.Equal(t, 1, issues[0].Number)
		require.Equal(t, "Add login", issues[0].Title)
		require.Equal(t, []string{"v0.1", "auth"}, issues[0].Labels)
		require.Empty(t, issues[1].Labels)
	})

	t.Run("filters out pull requests", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddOpenIssue(1, "Real issue")
		config.OpenIssues = append(config.OpenIssues, &gogithub.Issue{
			Number:           gogithub.Int(2),
			Title:            gogithub.String("A pull request"),
			PullRequestLinks: &gogithub.PullRequestLinks{URL: gogithub.String("https://example.com/pr/2")},
		})
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		issues, err := githubpkg.ListOpenIssues(context.Background(), client, owner, repo)
		require.NoError(t, err)
		require.Len(t, issues, 1)
		require.Equal(t, "Real issue", issues[0].Title)
	})

	t.Run("returns an error when the listing fails", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.FailOps["list"] = true
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		_, err := githubpkg.ListOpenIssues(context.Background(), client, owner, repo)
		require.Error(t, err)
	})
}

func TestAddLabel(t *testing.T) {
	t.Run("attaches the label", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		err := githubpkg.AddLabel(context.Background(), client, owner, repo, 42, "post-v0.1")
		require.NoError(t, err)
		require.Equal(t, []string{"post-v0.1"}, config.AddedLabels[42])
	})

	t.Run("propagates API failures", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.FailOps["labels"] = true
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		err := githubpkg.AddLabel(context.Background(), client, owner, repo, 42, "post-v0.1")
		require.Error(t, err)
	})
}

func TestCloseWithComment(t *testing.T) {
	t.Run("comments and then closes", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		err := githubpkg.CloseWithComment(context.Background(), client, owner, repo, 7, "deferred to post-v0.1")
		require.NoError(t, err)
		require.Equal(t, []string{"deferred to post-v0.1"}, config.Comments[7])
		require.Equal(t, []int{7}, config.ClosedIssues)
	})

	t.Run("skips the comment when empty", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		err := githubpkg.CloseWithComment(context.Background(), client, owner, repo, 7, "")
		require.NoError(t, err)
		require.Empty(t, config.Comments[7])
		require.Equal(t, []int{7}, config.ClosedIssues)
	})

	t.Run("does not close when the comment fails", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.FailOps["comments"] = true
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		err := githubpkg.CloseWithComment(context.Background(), client, owner, repo, 7, "deferred")
		require.Error(t, err)
		require.Empty(t, config.ClosedIssues)
	})
}

func TestCreateIssue(t *testing.T) {
	t.Run("creates an issue with body and labels", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		info, err := githubpkg.CreateIssue(context.Background(), client, owner, repo, githubpkg.CreateIssueOptions{
			Title:  "Add login",
			Body:   "OAuth flow",
			Labels: []string{"v0.1", "auth"},
		})
		require.NoError(t, err)
		require.NotNil(t, info)
		require.NotZero(t, info.Number)
		require.Equal(t, "Add login", info.Title)
		require.Equal(t, []string{"v0.1", "auth"}, info.Labels)
		require.Len(t, config.CreatedIssues, 1)
	})

	t.Run("propagates API failures", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.FailOps["create"] = true
		client, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		_, err := githubpkg.CreateIssue(context.Background(), client, owner, repo, githubpkg.CreateIssueOptions{
			Title: "Add login",
		})
		require.Error(t, err)
	})
}

func TestRealIssueClient(t *testing.T) {
	t.Run("implements IssueClient against the API", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.AddOpenIssue(1, "A")
		mockClient, owner, repo := testhelpers.NewMockGitHubClient(t, config)

		var client githubpkg.IssueClient = githubpkg.NewIssueClientFor(mockClient, owner, repo)

		gotOwner, gotRepo := client.GetOwnerRepo()
		require.Equal(t, owner, gotOwner)
		require.Equal(t, repo, gotRepo)

		issues, err := client.ListOpenIssues(context.Background())
		require.NoError(t, err)
		require.Len(t, issues, 1)

		require.NoError(t, client.AddLabel(context.Background(), 1, "post-v0.1"))
		require.NoError(t, client.CloseWithComment(context.Background(), 1, "deferred"))

		created, err := client.CreateIssue(context.Background(), githubpkg.CreateIssueOptions{Title: "B"})
		require.NoError(t, err)
		require.Equal(t, "B", created.Title)
	})
}
