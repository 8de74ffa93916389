// Package highlight renders fenced code blocks into line-numbered,
// syntax-coloured HTML with optional per-line emphasis.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "onedark"

const defaultTabWidth = 2

// Block is a single fenced code block.
type Block struct {
	Lang string
	Code string
	Meta string
}

// Line is one rendered line of a code block. Text keeps its trailing newline.
type Line struct {
	Number    int
	Text      string
	Highlight bool
	Tokens    []chroma.Token
}

// Result is the highlighted form of a Block.
type Result struct {
	// Lang is the resolved language tag, empty for plain blocks.
	Lang string
	// Plain is set when the language is absent or unsupported.
	Plain bool
	// Wrapped is set when metadata was present and lines carry markers.
	Wrapped bool
	Meta    Meta
	Lines   []Line

	tokens []chroma.Token
}

// Code joins the line texts back into the original code.
func (r Result) Code() string {
	var b strings.Builder

	for _, line := range r.Lines {
		b.WriteString(line.Text)
	}

	return b.String()
}

// Highlighted returns the numbers of the highlighted lines in order.
func (r Result) Highlighted() []int {
	var numbers []int

	for _, line := range r.Lines {
		if line.Highlight {
			numbers = append(numbers, line.Number)
		}
	}

	return numbers
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithStyle selects a chroma style by name. Unknown names fall back to the
// chroma fallback style.
func WithStyle(name string) Option {
	return func(h *Highlighter) {
		h.style = styles.Get(name)
	}
}

// WithTabWidth sets the number of spaces a tab expands to.
func WithTabWidth(width int) Option {
	return func(h *Highlighter) {
		if width > 0 {
			h.tabWidth = width
		}
	}
}

// Highlighter turns code blocks into Results and renders them. It holds no
// mutable state and is safe for concurrent use.
type Highlighter struct {
	languages Languages
	style     *chroma.Style
	tabWidth  int
}

// New creates a Highlighter restricted to the given languages.
func New(languages Languages, opts ...Option) *Highlighter {
	h := &Highlighter{
		languages: languages,
		style:     styles.Get(DefaultStyle),
		tabWidth:  defaultTabWidth,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Languages returns the table the highlighter was built with.
func (h *Highlighter) Languages() Languages {
	return h.languages
}

// Highlight resolves the language, splits the code into lines and marks
// the lines selected by the block's metadata.
func (h *Highlighter) Highlight(block Block) Result {
	result := Result{Meta: ParseMeta(block.Meta), Lines: splitLines(block.Code)}

	lexer, ok := h.languages.Lookup(block.Lang)
	if !ok {
		result.Plain = true
		result.Lang = strings.TrimSpace(block.Lang)

		return result
	}

	result.Lang = normalizeTag(block.Lang)
	result.Wrapped = result.Meta.Present()

	if result.Wrapped {
		for i := range result.Lines {
			result.Lines[i].Highlight = result.Meta.Lines.Has(result.Lines[i].Number)
		}
	}

	result.tokens = tokenise(lexer, block.Code)
	attachTokens(result.Lines, result.tokens)

	return result
}

func splitLines(code string) []Line {
	parts := strings.SplitAfter(code, "\n")
	if len(parts) > 0 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}

	lines := make([]Line, len(parts))
	for i, part := range parts {
		lines[i] = Line{Number: i + 1, Text: part}
	}

	return lines
}

func tokenise(lexer chroma.Lexer, code string) []chroma.Token {
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil
	}

	return iterator.Tokens()
}

// attachTokens assigns per-line tokens. When the lexer's view of the lines
// disagrees with the raw split, lines are left untokenised and render as
// plain text.
func attachTokens(lines []Line, tokens []chroma.Token) {
	if len(tokens) == 0 {
		return
	}

	tokenLines := chroma.SplitTokensIntoLines(tokens)
	if len(tokenLines) != len(lines) {
		return
	}

	for i := range lines {
		lines[i].Tokens = tokenLines[i]
	}
}
