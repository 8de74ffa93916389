package markdown

import (
	"github.com/ezerfernandes/mdfolio/internal/highlight"
)

// Block is a fenced code block found in a Markdown document. StartLine is
// the line of the opening fence and EndLine the last line of code.
type Block struct {
	Lang      string
	Meta      string
	Code      []byte
	StartLine int
	EndLine   int
}

type Blocks []*Block

// Highlight returns the input the code block highlighter expects.
func (b *Block) Highlight() highlight.Block {
	return highlight.Block{Lang: b.Lang, Code: string(b.Code), Meta: b.Meta}
}

// Unfence parses a Markdown document and returns all fenced code blocks in
// document order.
func Unfence(source []byte) (Blocks, error) {
	var blocks Blocks

	err := Walk(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}
