// Package frontmatter splits a leading YAML metadata block from Markdown text.
package frontmatter

import (
	"bytes"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const (
	delimiter     = "---"
	endDocument   = "..."
	byteOrderMark = "\ufeff"
)

// Both formats open with "---". YAML also allows "..." to end the block.
var (
	yamlFormat     = frontmatter.NewFormat(delimiter, delimiter, yaml.Unmarshal)
	yamlDotsFormat = frontmatter.NewFormat(delimiter, endDocument, yaml.Unmarshal)
)

// Document is a fetched Markdown file split into metadata and body.
type Document struct {
	Path       string
	Attributes Attributes
	Body       []byte
}

// Parse splits source into a Document for the given path.
func Parse(path string, source []byte) *Document {
	attrs, body := Split(source)

	return &Document{Path: path, Attributes: attrs, Body: body}
}

// Split separates a leading YAML block from the body. The block opens with a
// "---" line and closes at the first "---" or "..." line; a leading byte
// order mark is ignored. When the block is missing, unterminated or not
// valid YAML, the attributes are empty and the body is the whole input.
func Split(source []byte) (Attributes, []byte) {
	trimmed := bytes.TrimPrefix(source, []byte(byteOrderMark))

	end, ok := closingDelimiter(trimmed)
	if !ok {
		return Attributes{}, source
	}

	format := yamlFormat
	if end == endDocument {
		format = yamlDotsFormat
	}

	attrs := make(map[string]any)

	body, err := frontmatter.Parse(bytes.NewReader(trimmed), &attrs, format)
	if err != nil {
		return Attributes{}, source
	}

	if attrs == nil {
		attrs = make(map[string]any)
	}

	return Attributes(attrs), body
}

// closingDelimiter reports the line that closes a block opened on the first
// line, if any.
func closingDelimiter(source []byte) (string, bool) {
	opened := false

	for len(source) > 0 {
		line := source

		idx := bytes.IndexByte(source, '\n')
		if idx >= 0 {
			line, source = source[:idx], source[idx+1:]
		} else {
			source = nil
		}

		if !opened {
			if string(bytes.TrimRight(line, " \t\r")) != delimiter {
				return "", false
			}

			opened = true

			continue
		}

		// The parser trims both sides when it looks for the closing line.
		if trimmed := string(bytes.TrimSpace(line)); trimmed == delimiter || trimmed == endDocument {
			return trimmed, true
		}
	}

	return "", false
}
