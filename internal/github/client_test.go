package github

import (
	"context"
	"encoding/base64"
	stderrors "errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HartBrook/muntjac/internal/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

// newTestClient builds a Client whose transport serves canned JSON by
// request path, so no network is involved.
func newTestClient(t *testing.T, responses map[string]string) *Client {
	t.Helper()
	rest, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: "test-token",
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			body, ok := responses[req.URL.Path]
			status := http.StatusOK
			if !ok {
				status = http.StatusNotFound
				body = `{"message":"Not Found"}`
			}
			return &http.Response{
				StatusCode: status,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(strings.NewReader(body)),
				Request:    req,
			}, nil
		}),
	})
	require.NoError(t, err)
	return &Client{rest: rest}
}

func TestParseRepo(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{name: "valid", input: "acme-corp/prompts", wantOwner: "acme-corp", wantRepo: "prompts"},
		{name: "trims whitespace", input: "  acme/prompts  ", wantOwner: "acme", wantRepo: "prompts"},
		{name: "missing repo", input: "acme", wantErr: true},
		{name: "empty owner", input: "/prompts", wantErr: true},
		{name: "too many parts", input: "a/b/c", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepo(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var merr *errors.MuntjacError
				require.True(t, stderrors.As(err, &merr))
				assert.Equal(t, errors.ErrInvalidInput, merr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestFetchPrompt_ResolvesDefaultBranch(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("# Prompt library\n"))
	client := newTestClient(t, map[string]string{
		"/repos/acme/prompts":                    `{"default_branch":"main"}`,
		"/repos/acme/prompts/contents/README.md": `{"type":"file","path":"README.md","content":"` + encoded + `","sha":"abc123"}`,
	})

	result, err := client.FetchPrompt(context.Background(), "acme/prompts", "", "")
	require.NoError(t, err)
	assert.Equal(t, "# Prompt library\n", result.Content)
	assert.Equal(t, "README.md", result.Path)
	assert.Equal(t, "main", result.Branch)
	assert.Equal(t, "abc123", result.SHA)
}

func TestFetchPrompt_KeepsExplicitBranch(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))
	// No /repos/acme/prompts entry: an explicit branch must skip the
	// repo metadata call entirely.
	client := newTestClient(t, map[string]string{
		"/repos/acme/prompts/contents/PROMPT.md": `{"type":"file","path":"PROMPT.md","content":"` + encoded + `"}`,
	})

	result, err := client.FetchPrompt(context.Background(), "acme/prompts", "PROMPT.md", "dev")
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Content)
	assert.Equal(t, "dev", result.Branch)
}

func TestFetchFile_RejectsDirectory(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"/repos/acme/prompts/contents/docs": `{"type":"dir","path":"docs"}`,
	})

	_, err := client.FetchFile(context.Background(), "acme", "prompts", "docs", "main")
	require.Error(t, err)
	var merr *errors.MuntjacError
	require.True(t, stderrors.As(err, &merr))
	assert.Equal(t, errors.ErrInvalidInput, merr.Code)
}
