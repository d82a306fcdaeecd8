// Package testhelpers provides a mock GitHub issues API server and
// scripted clients for exercising the reconciler without the network.
package testhelpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// OpenIssues is the scripted response for the open-issue listing
	OpenIssues []*github.Issue
	// CreatedIssues stores issues that were created (for testing)
	CreatedIssues []*github.Issue
	// ClosedIssues records issue numbers transitioned to closed
	ClosedIssues []int
	// AddedLabels records labels attached per issue number
	AddedLabels map[int][]string
	// Comments records comments left per issue number
	Comments map[int][]string
	// FailOps makes the named operations return HTTP 500
	// ("list", "create", "labels", "comments", "edit")
	FailOps map[string]bool
	// Owner and Repo for the mock server
	Owner string
	Repo  string
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		AddedLabels: make(map[int][]string),
		Comments:    make(map[int][]string),
		FailOps:     make(map[string]bool),
		Owner:       "owner",
		Repo:        "repo",
	}
}

// AddOpenIssue scripts an open issue into the listing response
func (c *MockGitHubServerConfig) AddOpenIssue(number int, title string, labels ...string) {
	issue := &github.Issue{
		Number: github.Int(number),
		Title:  github.String(title),
		State:  github.String("open"),
	}
	for _, label := range labels {
		issue.Labels = append(issue.Labels, &github.Label{Name: github.String(label)})
	}
	c.OpenIssues = append(c.OpenIssues, issue)
}

// NewMockGitHubServer creates an httptest server that mocks the GitHub
// issues API endpoints the reconciler touches
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	basePath := "/repos/" + config.Owner + "/" + config.Repo + "/issues"

	handler := func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// GET /repos/{owner}/{repo}/issues — list
		if path == basePath && r.Method == "GET" {
			if config.FailOps["list"] {
				http.Error(w, "scripted listing failure", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			issues := config.OpenIssues
			if issues == nil {
				issues = []*github.Issue{}
			}
			_ = json.NewEncoder(w).Encode(issues)
			return
		}

		// POST /repos/{owner}/{repo}/issues — create
		if path == basePath && r.Method == "POST" {
			if config.FailOps["create"] {
				http.Error(w, "scripted create failure", http.StatusInternalServerError)
				return
			}

			var req github.IssueRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			number := 1000 + len(config.CreatedIssues) + 1
			issue := &github.Issue{
				Number: github.Int(number),
				Title:  req.Title,
				Body:   req.Body,
				State:  github.String("open"),
			}
			if req.Labels != nil {
				for _, name := range *req.Labels {
					issue.Labels = append(issue.Labels, &github.Label{Name: github.String(name)})
				}
			}
			config.CreatedIssues = append(config.CreatedIssues, issue)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(issue)
			return
		}

		// Per-issue endpoints: /repos/{owner}/{repo}/issues/{number}[/...]
		if strings.HasPrefix(path, basePath+"/") {
			rest := strings.TrimPrefix(path, basePath+"/")
			segments := strings.Split(rest, "/")
			number, err := strconv.Atoi(segments[0])
			if err != nil {
				http.Error(w, "invalid issue number", http.StatusBadRequest)
				return
			}

			// POST .../issues/{number}/labels
			if len(segments) == 2 && segments[1] == "labels" && r.Method == "POST" {
				if config.FailOps["labels"] {
					http.Error(w, "scripted label failure", http.StatusInternalServerError)
					return
				}
				var labels []string
				if err := json.NewDecoder(r.Body).Decode(&labels); err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				config.AddedLabels[number] = append(config.AddedLabels[number], labels...)

				resp := make([]*github.Label, 0, len(labels))
				for _, name := range labels {
					resp = append(resp, &github.Label{Name: github.String(name)})
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(resp)
				return
			}

			// POST .../issues/{number}/comments
			if len(segments) == 2 && segments[1] == "comments" && r.Method == "POST" {
				if config.FailOps["comments"] {
					http.Error(w, "scripted comment failure", http.StatusInternalServerError)
					return
				}
				var comment github.IssueComment
				if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				if comment.Body != nil {
					config.Comments[number] = append(config.Comments[number], *comment.Body)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(&comment)
				return
			}

			// PATCH .../issues/{number} — edit (close)
			if len(segments) == 1 && r.Method == "PATCH" {
				if config.FailOps["edit"] {
					http.Error(w, "scripted edit failure", http.StatusInternalServerError)
					return
				}
				var req github.IssueRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				if req.State != nil && *req.State == "closed" {
					config.ClosedIssues = append(config.ClosedIssues, number)
				}
				issue := &github.Issue{
					Number: github.Int(number),
					State:  req.State,
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(w).Encode(issue)
				return
			}
		}

		http.Error(w, fmt.Sprintf("Unhandled path: %s (method: %s)", path, r.Method), http.StatusNotFound)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(basePath+"/", handler)
	mux.HandleFunc(basePath, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a go-github client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) (*github.Client, string, string) {
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL

	owner := config.Owner
	repo := config.Repo
	if owner == "" {
		owner = "owner"
	}
	if repo == "" {
		repo = "repo"
	}

	return client, owner, repo
}
