package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultAPIBaseURL = "https://api.github.com"

// GitHubConfig describes the repository file backing the document.
type GitHubConfig struct {
	// Token is the bearer credential presented on every request.
	Token string
	// Owner and Repo locate the repository.
	Owner string
	Repo  string
	// Path is the document file path within the repository.
	Path string
	// Branch is the ref written to. Defaults to "main".
	Branch string
	// BaseURL overrides the API endpoint (useful for tests).
	BaseURL string
	// HTTPClient overrides the HTTP client. The bearer credential is
	// attached regardless.
	HTTPClient *http.Client
}

// GitHubStore implements Store over the GitHub contents API. The version
// tag is the file's blob SHA; GitHub rejects a write whose sha does not
// match the current blob.
type GitHubStore struct {
	config GitHubConfig
	client *http.Client
}

// NewGitHubStore creates a store for the configured repository file.
func NewGitHubStore(cfg GitHubConfig) *GitHubStore {
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAPIBaseURL
	}

	base := http.DefaultTransport
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	} else {
		clone := *client
		client = &clone
		if client.Transport != nil {
			base = client.Transport
		}
	}
	client.Transport = &bearerRoundTripper{base: base, token: cfg.Token}

	return &GitHubStore{config: cfg, client: client}
}

func (s *GitHubStore) contentURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		strings.TrimSuffix(s.config.BaseURL, "/"),
		url.PathEscape(s.config.Owner),
		url.PathEscape(s.config.Repo),
		escapePath(s.config.Path))
}

// escapePath escapes each segment of a repository file path, keeping the
// separators so nested paths stay nested.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

type contentResponse struct {
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// GetFile reads the document file and its current blob SHA.
func (s *GitHubStore) GetFile(ctx context.Context) (File, error) {
	u := s.contentURL() + "?ref=" + url.QueryEscape(s.config.Branch)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, fmt.Errorf("%w: reading response: %v", ErrRemoteUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return File{}, fmt.Errorf("%w: GET %s: %s: %s", ErrRemoteUnavailable, s.config.Path, resp.Status, body)
	}

	var content contentResponse
	if err := json.Unmarshal(body, &content); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return File{Content: content.Content, Encoding: content.Encoding, Tag: content.SHA}, nil
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch"`
}

// PutFile replaces the document file guarded by the blob SHA.
func (s *GitHubStore) PutFile(ctx context.Context, content, tag, message string) error {
	payload, err := json.Marshal(putRequest{
		Message: message,
		Content: content,
		SHA:     tag,
		Branch:  s.config.Branch,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.contentURL(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrRemoteConflict, body)
	default:
		return fmt.Errorf("%w: PUT %s: %s: %s", ErrRemoteUnavailable, s.config.Path, resp.Status, body)
	}
}

// bearerRoundTripper attaches the bearer credential to outgoing requests
// without clobbering an explicitly set Authorization header.
type bearerRoundTripper struct {
	base  http.RoundTripper
	token string
}

func (b *bearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	base := b.base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Header.Get("Authorization") == "" && b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
	return base.RoundTrip(req)
}
