package cmd

import (
	"github.com/ezerfernandes/mdfolio/internal/highlight"
	"github.com/ezerfernandes/mdfolio/internal/markdown"
)

func walk(source []byte, walker markdown.Walker, filter filterFunc) error {
	return markdown.Walk(source, func(block *markdown.Block) error {
		if filter(block.Lang, highlight.ParseMeta(block.Meta)) {
			return walker(block)
		}

		return nil
	})
}
