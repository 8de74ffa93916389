package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"golang.org/x/time/rate"
)

const defaultGitHubTimeout = 10 * time.Second

// GitHubConfig locates a repository and the credentials used to read it.
type GitHubConfig struct {
	Owner   string
	Repo    string
	Ref     string
	Token   string
	BaseURL string
	Timeout time.Duration
	// RateLimit caps outgoing requests per second; zero disables the limit.
	RateLimit float64
}

// GitHubSource reads files through the GitHub contents API.
type GitHubSource struct {
	cfg        GitHubConfig
	httpClient *http.Client
	client     *github.Client
	limiter    *rate.Limiter
}

var _ Source = (*GitHubSource)(nil)

// GitHubOption customises a GitHubSource.
type GitHubOption func(*GitHubSource)

// WithHTTPClient replaces the HTTP client underneath the API client.
func WithHTTPClient(client *http.Client) GitHubOption {
	return func(s *GitHubSource) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// NewGitHubSource builds a source for cfg.Owner/cfg.Repo. An empty
// cfg.BaseURL targets api.github.com. It fails only when cfg.BaseURL is not a
// valid URL.
func NewGitHubSource(cfg GitHubConfig, opts ...GitHubOption) (*GitHubSource, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGitHubTimeout
	}

	s := &GitHubSource{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.client = github.NewClient(s.httpClient)

	if cfg.Token != "" {
		s.client = s.client.WithAuthToken(cfg.Token)
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("github base url %q: %w", cfg.BaseURL, err)
		}

		s.client.BaseURL = base
	}

	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return s, nil
}

// File downloads path and returns its decoded contents.
func (s *GitHubSource) File(ctx context.Context, path string) ([]byte, error) {
	file, _, err := s.contents(ctx, path)
	if err != nil {
		return nil, err
	}

	if file == nil || (file.GetType() != "" && file.GetType() != string(TypeFile)) {
		return nil, notFoundError(path)
	}

	// Files above the inline size limit come back without content.
	if file.GetEncoding() == "none" || (file.Content == nil && file.GetDownloadURL() != "") {
		return s.download(ctx, file.GetDownloadURL(), path)
	}

	data, err := file.GetContent()
	if err != nil {
		return nil, decodeError(err, path)
	}

	return []byte(data), nil
}

// List returns the entries of dir in the order the API reports them.
func (s *GitHubSource) List(ctx context.Context, dir string) ([]Entry, error) {
	_, items, err := s.contents(ctx, dir)
	if err != nil {
		return nil, err
	}

	if items == nil {
		return nil, notFoundError(dir)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, Entry{Name: item.GetName(), Path: item.GetPath(), Type: EntryType(item.GetType())})
	}

	return entries, nil
}

func (s *GitHubSource) contents(
	ctx context.Context, path string,
) (*github.RepositoryContent, []*github.RepositoryContent, error) {
	if err := s.wait(ctx, path); err != nil {
		return nil, nil, err
	}

	var opts *github.RepositoryContentGetOptions
	if s.cfg.Ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: s.cfg.Ref}
	}

	file, dir, _, err := s.client.Repositories.GetContents(ctx, s.cfg.Owner, s.cfg.Repo, strings.Trim(path, "/"), opts)
	if err != nil {
		return nil, nil, apiError(err, path)
	}

	return file, dir, nil
}

func (s *GitHubSource) download(ctx context.Context, target, path string) ([]byte, error) {
	if target == "" {
		return nil, decodeError(errors.New("no content and no download url"), path)
	}

	if err := s.wait(ctx, path); err != nil {
		return nil, err
	}

	req, err := s.client.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, fetchError(err, path)
	}

	var buf bytes.Buffer
	if _, err := s.client.Do(ctx, req, &buf); err != nil {
		return nil, apiError(err, path)
	}

	return buf.Bytes(), nil
}

func (s *GitHubSource) wait(ctx context.Context, path string) error {
	if s.limiter == nil {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fetchError(err, path)
	}

	return nil
}

// apiError maps a 404 or a rejected path onto NotFound and anything else
// onto a fetch failure.
func apiError(err error, path string) error {
	if errors.Is(err, github.ErrPathForbidden) {
		return notFoundError(path)
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		return notFoundError(path)
	}

	return fetchError(err, path)
}
