package highlight

import (
	"strings"

	"github.com/ezerfernandes/mdfolio/internal/ranges"
	"github.com/google/shlex"
)

// Meta holds the parsed metadata string of a fenced code block: the lines
// to highlight and any key=value attributes around them.
type Meta struct {
	Raw   string
	Lines ranges.Set
	Attrs map[string]string
}

// Get returns the attribute value for the given key, or "" when missing.
func (m Meta) Get(name string) string {
	if m.Attrs == nil {
		return ""
	}

	return m.Attrs[name]
}

// Present reports whether the block carried any metadata at all.
func (m Meta) Present() bool {
	return len(strings.TrimSpace(m.Raw)) != 0
}

// ParseMeta reads a metadata string such as `{1,3-5} title="main.go"`. The
// first {...} segment is the highlight range; a malformed range highlights
// nothing. Unbalanced quotes drop the attributes but keep the range.
func ParseMeta(raw string) Meta {
	meta := Meta{Raw: raw, Attrs: map[string]string{}}
	if !meta.Present() {
		return meta
	}

	rest := raw

	if spec, before, after, ok := braces(raw); ok {
		meta.Lines = ranges.Parse(spec)
		rest = before + " " + after
	}

	words, err := shlex.Split(rest)
	if err != nil {
		return meta
	}

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx > 0 {
			meta.Attrs[word[:idx]] = word[idx+1:]
		}
	}

	return meta
}

// braces splits s around its first {...} segment.
func braces(s string) (inner, before, after string, ok bool) {
	open := strings.IndexByte(s, '{')
	if open < 0 {
		return "", s, "", false
	}

	end := strings.IndexByte(s[open+1:], '}')
	if end < 0 {
		return "", s, "", false
	}

	end += open + 1

	return s[open+1 : end], s[:open], s[end+1:], true
}
