package markdown

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`^\s*(\w+)\s*(.*?)\s*$`)

// Walker is a callback invoked for each fenced code block found in a
// Markdown document.
type Walker func(block *Block) error

// Walk parses a Markdown document and calls walker for every fenced code
// block. The first walker error stops the walk and is returned.
func Walk(source []byte, walker Walker) error {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		if err := walker(fence{node: fcb, source: source}.block()); err != nil {
			return ast.WalkStop, err
		}

		return ast.WalkSkipChildren, nil
	})
}

// fence reads a fenced code block node against the source it was parsed from.
type fence struct {
	node   *ast.FencedCodeBlock
	source []byte
}

func (f fence) block() *Block {
	lang, meta := f.info()
	start, end := f.span()

	return &Block{Lang: lang, Meta: meta, Code: f.code(), StartLine: start, EndLine: end}
}

// info returns the language word and the metadata after it.
func (f fence) info() (string, string) {
	if f.node.Info == nil {
		return "", ""
	}

	return parseInfo(f.node.Info.Segment.Value(f.source))
}

func (f fence) code() []byte {
	var buf bytes.Buffer

	lines := f.node.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		buf.Write(line.Value(f.source))
	}

	return buf.Bytes()
}

// span returns the 1-based line of the opening fence and of the last code
// line. Without an info string the opening fence has no segment of its own,
// so it is taken as the line before the code.
func (f fence) span() (int, int) {
	lines := f.node.Lines()

	var start, end int

	switch {
	case f.node.Info != nil:
		start = f.lineOf(f.node.Info.Segment.Start)
	case lines.Len() > 0:
		start = f.lineOf(lines.At(0).Start) - 1
	}

	switch {
	case lines.Len() > 0:
		end = f.lineOf(lines.At(lines.Len()-1).Stop - 1)
	case start > 0:
		end = start + 1
	}

	return start, end
}

func (f fence) lineOf(offset int) int {
	offset = min(offset, len(f.source))

	return bytes.Count(f.source[:offset], []byte{'\n'}) + 1
}

// parseInfo splits a fence info string into its language word and the
// free-form metadata that follows it.
func parseInfo(info []byte) (string, string) {
	all := reInfo.FindSubmatch(info)
	if all == nil {
		return "", string(bytes.TrimSpace(info))
	}

	return string(all[1]), string(all[2])
}
