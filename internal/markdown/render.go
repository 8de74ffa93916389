// Package markdown renders Markdown documents to HTML and extracts their
// fenced code blocks. Fenced code blocks are rendered by the highlight
// package; every other construct uses goldmark's standard HTML output.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ezerfernandes/mdfolio/internal/frontmatter"
	"github.com/ezerfernandes/mdfolio/internal/highlight"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// codeBlockPriority places the code block renderer ahead of goldmark's
// default HTML renderer, registered at 1000.
const codeBlockPriority = 100

// Config controls the goldmark engine.
type Config struct {
	Extensions []string
	HardWraps  bool
	Unsafe     bool
}

// Renderer converts Markdown into HTML. It keeps no state between documents
// and is safe for concurrent use.
type Renderer struct {
	engine      goldmark.Markdown
	highlighter *highlight.Highlighter
}

// NewRenderer builds a Renderer that delegates fenced code blocks to h.
func NewRenderer(h *highlight.Highlighter, cfg Config) *Renderer {
	rendererOptions := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(&codeBlockRenderer{highlighter: h}, codeBlockPriority)),
	}

	if cfg.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	if cfg.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engine := goldmark.New(
		goldmark.WithExtensions(collectExtensions(cfg.Extensions)...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)

	return &Renderer{engine: engine, highlighter: h}
}

// Render converts Markdown source into HTML.
func (r *Renderer) Render(ctx context.Context, source []byte) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := r.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderDocument converts the body of doc into HTML.
func (r *Renderer) RenderDocument(ctx context.Context, doc *frontmatter.Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("markdown render: document is nil")
	}

	html, err := r.Render(ctx, doc.Body)
	if err != nil {
		return nil, fmt.Errorf("markdown render document %s: %w", doc.Path, err)
	}

	return html, nil
}

type codeBlockRenderer struct {
	highlighter *highlight.Highlighter
}

func (c *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, c.renderFencedCodeBlock)
}

func (c *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	fcb, ok := node.(*ast.FencedCodeBlock)
	if !ok {
		return ast.WalkContinue, nil
	}

	result := c.highlighter.Highlight(fence{node: fcb, source: source}.block().Highlight())

	if err := c.highlighter.Render(w, result); err != nil {
		return ast.WalkStop, err
	}

	return ast.WalkSkipChildren, nil
}
