// Package github fetches prompt files from GitHub repositories so they
// can be optimized without cloning anything.
package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/HartBrook/muntjac/internal/errors"
)

// DefaultPromptPath is fetched when no path is given.
const DefaultPromptPath = "README.md"

// Client wraps the GitHub API for muntjac's needs.
type Client struct {
	rest *api.RESTClient
}

// FetchResult contains the result of a fetch operation.
type FetchResult struct {
	Content string
	Path    string
	Branch  string
	SHA     string
}

// NewClient creates a GitHub client using go-gh (automatic auth).
func NewClient() (*Client, error) {
	client, err := api.DefaultRESTClient()
	if err != nil {
		return nil, err
	}
	return &Client{rest: client}, nil
}

// NewClientWithToken creates a GitHub client with explicit token.
func NewClientWithToken(token string) (*Client, error) {
	client, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: token,
	})
	if err != nil {
		return nil, err
	}
	return &Client{rest: client}, nil
}

// NewUnauthenticatedClient creates a GitHub client without
// authentication. This works for public repositories only and has
// lower rate limits (60/hour).
func NewUnauthenticatedClient() (*Client, error) {
	client, err := api.NewRESTClient(api.ClientOptions{})
	if err != nil {
		return nil, err
	}
	return &Client{rest: client}, nil
}

// ParseRepo splits an "owner/repo" string.
func ParseRepo(repo string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(repo), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.New(errors.ErrInvalidInput,
			fmt.Sprintf("invalid repository %q", repo),
			"Use the owner/repo form, e.g. acme-corp/prompts")
	}
	return parts[0], parts[1], nil
}

// fileContentsResponse represents GitHub's contents API response.
type fileContentsResponse struct {
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	Size     int    `json:"size"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	SHA      string `json:"sha"`
}

// FetchFile fetches a file from a repo. An empty branch uses the
// repository's default branch.
func (c *Client) FetchFile(ctx context.Context, owner, repo, path, branch string) (*FetchResult, error) {
	if owner == "" || repo == "" || path == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"owner, repo, and path are required", "")
	}

	endpoint := fmt.Sprintf("repos/%s/%s/contents/%s", owner, repo, url.PathEscape(path))
	if branch != "" {
		endpoint += "?ref=" + url.QueryEscape(branch)
	}

	location := fmt.Sprintf("%s/%s/%s", owner, repo, path)

	var response fileContentsResponse
	if err := c.rest.Get(endpoint, &response); err != nil {
		return nil, errors.GitHubFetchFailed(location, err)
	}
	if response.Type != "" && response.Type != "file" {
		return nil, errors.New(errors.ErrInvalidInput,
			fmt.Sprintf("%s is a %s, not a file", location, response.Type),
			"Point --path at a file, not a directory")
	}

	content, err := base64.StdEncoding.DecodeString(
		strings.ReplaceAll(response.Content, "\n", ""))
	if err != nil {
		return nil, errors.GitHubFetchFailed(location, err)
	}

	return &FetchResult{
		Content: string(content),
		Path:    response.Path,
		SHA:     response.SHA,
	}, nil
}

// FetchPrompt fetches the prompt file to optimize, defaulting to the
// repository README. When no branch is given the repository's default
// branch is resolved first, so the result always reports which branch
// the content came from.
func (c *Client) FetchPrompt(ctx context.Context, repo, path, branch string) (*FetchResult, error) {
	owner, name, err := ParseRepo(repo)
	if err != nil {
		return nil, err
	}
	if branch == "" {
		branch, err = c.GetDefaultBranch(ctx, owner, name)
		if err != nil {
			return nil, err
		}
	}
	if path == "" {
		path = DefaultPromptPath
	}

	result, err := c.FetchFile(ctx, owner, name, path, branch)
	if err != nil {
		return nil, err
	}
	result.Branch = branch
	return result, nil
}

// GetDefaultBranch returns the repo's default branch.
func (c *Client) GetDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	endpoint := fmt.Sprintf("repos/%s/%s", owner, repo)

	var response struct {
		DefaultBranch string `json:"default_branch"`
	}
	if err := c.rest.Get(endpoint, &response); err != nil {
		return "", errors.GitHubFetchFailed(owner+"/"+repo, err)
	}
	return response.DefaultBranch, nil
}
