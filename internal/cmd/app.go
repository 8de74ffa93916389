package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ezerfernandes/mdfolio/internal/blog"
	"github.com/ezerfernandes/mdfolio/internal/config"
	"github.com/ezerfernandes/mdfolio/internal/content"
	"github.com/ezerfernandes/mdfolio/internal/highlight"
	"github.com/ezerfernandes/mdfolio/internal/logging"
	"github.com/ezerfernandes/mdfolio/internal/markdown"
)

const stdinName = "-"

// newSource builds the configured content source. The cache is returned
// separately so callers can invalidate it; it is nil when caching is off.
func newSource(cfg config.Content) (content.Source, *content.CachedSource, error) {
	var source content.Source

	switch strings.ToLower(cfg.Source) {
	case config.SourceGitHub:
		gh, err := content.NewGitHubSource(content.GitHubConfig{
			Owner:     cfg.Owner,
			Repo:      cfg.Repo,
			Ref:       cfg.Ref,
			Token:     cfg.Token,
			BaseURL:   cfg.BaseURL,
			Timeout:   cfg.Timeout,
			RateLimit: cfg.RateLimit,
		})
		if err != nil {
			return nil, nil, err
		}

		source = gh
	case config.SourceDir:
		source = content.NewLocalSource(cfg.Dir)
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, cfg.Source)
	}

	if cfg.CacheTTL <= 0 {
		return source, nil, nil
	}

	cached := content.NewCachedSource(source, cfg.CacheTTL)

	return cached, cached, nil
}

func newRenderer(cfg config.Render) *markdown.Renderer {
	languages := highlight.DefaultLanguages()
	if len(cfg.Languages) != 0 {
		languages = highlight.LanguagesFor(cfg.Languages...)
	}

	h := highlight.New(languages, highlight.WithStyle(cfg.Style), highlight.WithTabWidth(cfg.TabWidth))

	return markdown.NewRenderer(h, markdown.Config{
		Extensions: cfg.Extensions,
		HardWraps:  cfg.HardWraps,
		Unsafe:     cfg.Unsafe,
	})
}

func newBlogService(cfg config.Config, source content.Source, provider logging.Provider) (*blog.Service, error) {
	return blog.NewService(source, newRenderer(cfg.Render), blog.Config{
		BlogDir:     cfg.Content.BlogDir,
		PagesDir:    cfg.Content.PagesDir,
		Exclude:     cfg.Content.Exclude,
		Concurrency: cfg.Content.Concurrency,
	}, blog.WithLogger(logging.ModuleLogger(provider, "mdfolio.blog")))
}

// readSource reads the named file, or standard input for "-" or no name.
func readSource(args []string, stdin io.Reader) (string, []byte, error) {
	if len(args) == 0 || args[0] == stdinName {
		data, err := io.ReadAll(stdin)

		return stdinName, data, err
	}

	data, err := os.ReadFile(args[0])

	return args[0], data, err
}
