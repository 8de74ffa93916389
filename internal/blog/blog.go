// Package blog assembles posts and standalone pages out of a content source.
package blog

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/ezerfernandes/mdfolio/internal/content"
	"github.com/ezerfernandes/mdfolio/internal/frontmatter"
	"github.com/ezerfernandes/mdfolio/internal/logging"
	"github.com/ezerfernandes/mdfolio/internal/markdown"
	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBlogDir  = "content/blog"
	DefaultPagesDir = "content"
	markdownExt     = ".md"
)

// DefaultExclude lists the blog directory entries that are never posts.
var DefaultExclude = []string{"README.md"}

// Config locates posts and pages inside the source.
type Config struct {
	BlogDir  string
	PagesDir string
	// Exclude holds glob patterns matched against entry names.
	Exclude []string
	// Concurrency bounds parallel fetches in Posts; zero means unbounded.
	Concurrency int
}

// Post is a blog entry as shown in the archive.
type Post struct {
	Slug       string
	Path       string
	Attributes frontmatter.Attributes
}

// Title returns the front matter title, or the slug when it is missing.
func (p Post) Title() string {
	if title := p.Attributes.Title(); title != "" {
		return title
	}

	return p.Slug
}

// Article is a fully rendered post or page.
type Article struct {
	Slug     string
	Document *frontmatter.Document
	HTML     []byte
}

// Service reads posts and pages from a source and renders them.
type Service struct {
	source   content.Source
	renderer *markdown.Renderer
	cfg      Config
	exclude  []glob.Glob
	logger   logging.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds a Service. Invalid exclude patterns are reported here.
func NewService(source content.Source, renderer *markdown.Renderer, cfg Config, opts ...Option) (*Service, error) {
	if cfg.BlogDir == "" {
		cfg.BlogDir = DefaultBlogDir
	}

	if cfg.PagesDir == "" {
		cfg.PagesDir = DefaultPagesDir
	}

	if cfg.Exclude == nil {
		cfg.Exclude = DefaultExclude
	}

	cfg.BlogDir = strings.Trim(cfg.BlogDir, "/")
	cfg.PagesDir = strings.Trim(cfg.PagesDir, "/")

	s := &Service{
		source:   source,
		renderer: renderer,
		cfg:      cfg,
		logger:   logging.NoOp(),
	}

	for _, pattern := range cfg.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("blog: invalid exclude pattern %q: %w", pattern, err)
		}

		s.exclude = append(s.exclude, g)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Posts lists the blog directory and reads the front matter of every post.
// Posts are returned in listing order.
func (s *Service) Posts(ctx context.Context) ([]Post, error) {
	entries, err := s.source.List(ctx, s.cfg.BlogDir)
	if err != nil {
		return nil, err
	}

	var posts []Post

	for _, entry := range entries {
		if !s.isPost(entry) {
			continue
		}

		posts = append(posts, Post{Slug: s.slug(entry.Path), Path: entry.Path})
	}

	g, ctx := errgroup.WithContext(ctx)
	if s.cfg.Concurrency > 0 {
		g.SetLimit(s.cfg.Concurrency)
	}

	for i := range posts {
		post := &posts[i]

		g.Go(func() error {
			data, err := s.source.File(ctx, post.Path)
			if err != nil {
				return err
			}

			post.Attributes, _ = frontmatter.Split(data)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("blog posts fetch failed", "dir", s.cfg.BlogDir, "error", err)

		return nil, err
	}

	s.logger.Debug("blog posts listed", "dir", s.cfg.BlogDir, "count", len(posts))

	return posts, nil
}

// Post fetches and renders the post named by slug.
func (s *Service) Post(ctx context.Context, slug string) (*Article, error) {
	if !ValidSlug(slug) {
		return nil, content.ErrNotFound
	}

	return s.article(ctx, slug, path.Join(s.cfg.BlogDir, slug+markdownExt))
}

// Page fetches and renders a standalone page such as "about".
func (s *Service) Page(ctx context.Context, name string) (*Article, error) {
	if !ValidSlug(name) {
		return nil, content.ErrNotFound
	}

	return s.article(ctx, name, path.Join(s.cfg.PagesDir, name+markdownExt))
}

func (s *Service) article(ctx context.Context, slug, filePath string) (*Article, error) {
	data, err := s.source.File(ctx, filePath)
	if err != nil {
		return nil, err
	}

	doc := frontmatter.Parse(filePath, data)

	html, err := s.renderer.RenderDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &Article{Slug: slug, Document: doc, HTML: html}, nil
}

func (s *Service) isPost(entry content.Entry) bool {
	if entry.Type != content.TypeFile || !strings.HasSuffix(entry.Name, markdownExt) {
		return false
	}

	for _, g := range s.exclude {
		if g.Match(entry.Name) {
			return false
		}
	}

	return true
}

func (s *Service) slug(entryPath string) string {
	slug := strings.TrimPrefix(entryPath, s.cfg.BlogDir+"/")

	return strings.TrimSuffix(slug, markdownExt)
}

// ValidSlug reports whether slug names a single file below its directory.
func ValidSlug(slug string) bool {
	if slug == "" || strings.HasPrefix(slug, ".") {
		return false
	}

	return !strings.ContainsAny(slug, "/\\\x00")
}
