package frontmatter_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ezerfernandes/mdfolio/internal/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const post = `---
title: Range highlighting
date: 2022-11-05
description: Marking lines in code blocks
lang: zh-CN
meta:
  keyword:
    - go
    - markdown
---
# Hello

Body text.
`

func TestSplit(t *testing.T) {
	t.Parallel()

	attrs, body := frontmatter.Split([]byte(post))

	assert.Equal(t, "Range highlighting", attrs.Title())
	assert.Equal(t, "Marking lines in code blocks", attrs.Description())
	assert.Equal(t, "zh-CN", attrs.Lang())
	assert.Equal(t, []string{"go", "markdown"}, attrs.Keywords())

	date, ok := attrs.Date()
	require.True(t, ok)
	assert.Equal(t, time.Date(2022, time.November, 5, 0, 0, 0, 0, time.UTC), date.UTC())

	assert.Equal(t, "# Hello\n\nBody text.", strings.TrimSpace(string(body)))
	assert.NotContains(t, string(body), "title:")
}

func TestSplitWithoutFrontMatter(t *testing.T) {
	t.Parallel()

	for _, source := range []string{
		"# Just a heading\n\nNo metadata here.\n",
		"",
		"text before\n---\ntitle: x\n---\n",
		" ---\ntitle: indented\n---\n",
	} {
		attrs, body := frontmatter.Split([]byte(source))

		assert.NotNil(t, attrs)
		assert.Empty(t, attrs)
		assert.Equal(t, source, string(body))
	}
}

func TestSplitMalformed(t *testing.T) {
	t.Parallel()

	for name, source := range map[string]string{
		"unterminated": "---\ntitle: never closed\n\n# Body\n",
		"invalid yaml": "---\ntitle: [unclosed\n---\n# Body\n",
		"list block":   "---\n- a\n- b\n---\n# Body\n",
	} {
		attrs, body := frontmatter.Split([]byte(source))

		assert.Empty(t, attrs, name)
		assert.Equal(t, source, string(body), name)
	}
}

func TestSplitDocumentEndMarker(t *testing.T) {
	t.Parallel()

	attrs, body := frontmatter.Split([]byte("---\ntitle: x\n...\nbody\n---\nmore\n"))

	assert.Equal(t, "x", attrs.Title())
	assert.Equal(t, "body\n---\nmore\n", string(body))
}

func TestSplitFirstClosingLineWins(t *testing.T) {
	t.Parallel()

	attrs, body := frontmatter.Split([]byte("---\ntitle: x\n---\nbody\n...\nmore\n"))

	assert.Equal(t, "x", attrs.Title())
	assert.Equal(t, "body\n...\nmore\n", string(body))
}

func TestSplitByteOrderMark(t *testing.T) {
	t.Parallel()

	attrs, body := frontmatter.Split([]byte("\ufeff---\ntitle: x\n---\nbody\n"))

	assert.Equal(t, "x", attrs.Title())
	assert.Equal(t, "body\n", string(body))

	source := "\ufeff# No metadata\n"
	attrs, body = frontmatter.Split([]byte(source))

	assert.Empty(t, attrs)
	assert.Equal(t, source, string(body))
}

func TestParse(t *testing.T) {
	t.Parallel()

	doc := frontmatter.Parse("content/blog/hello.md", []byte(post))

	assert.Equal(t, "content/blog/hello.md", doc.Path)
	assert.Equal(t, "Range highlighting", doc.Attributes.Title())
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(doc.Body)), "# Hello"))
}

func TestAttributesDate(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2023, time.March, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		attrs frontmatter.Attributes
		want  time.Time
		ok    bool
	}{
		{"time value", frontmatter.Attributes{"date": stamp}, stamp, true},
		{"date string", frontmatter.Attributes{"date": "2023-03-01"}, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), true},
		{"rfc3339", frontmatter.Attributes{"date": "2023-03-01T10:30:00Z"}, stamp, true},
		{"garbage", frontmatter.Attributes{"date": "last tuesday"}, time.Time{}, false},
		{"missing", frontmatter.Attributes{}, time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := tt.attrs.Date()

		assert.Equal(t, tt.ok, ok, tt.name)
		assert.True(t, tt.want.Equal(got), tt.name)
	}
}

func TestAttributesString(t *testing.T) {
	t.Parallel()

	attrs := frontmatter.Attributes{"count": 3, "empty": nil}

	assert.Equal(t, "3", attrs.String("count"))
	assert.Equal(t, "", attrs.String("empty"))
	assert.Equal(t, "", attrs.String("missing"))
	assert.Nil(t, attrs.Keywords())
}
