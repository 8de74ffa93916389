package highlight

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

const titleAttr = "title"

// Render writes the HTML form of r to w. Plain results become an escaped
// <pre><code> block; results without metadata go through the chroma HTML
// formatter; results with metadata are wrapped line by line.
func (h *Highlighter) Render(w io.Writer, r Result) error {
	var buf bytes.Buffer

	switch {
	case r.Plain:
		renderPlain(&buf, r)
	case !r.Wrapped:
		if err := h.renderSimple(&buf, r); err != nil {
			buf.Reset()
			renderPlain(&buf, r)
		}
	default:
		h.renderWrapped(&buf, r)
	}

	_, err := w.Write(buf.Bytes())

	return err
}

func renderPlain(buf *bytes.Buffer, r Result) {
	buf.WriteString("<pre><code")

	if len(r.Lang) != 0 {
		fmt.Fprintf(buf, ` class="language-%s"`, html.EscapeString(r.Lang))
	}

	buf.WriteString(">")
	buf.WriteString(html.EscapeString(r.Code()))
	buf.WriteString("</code></pre>\n")
}

func (h *Highlighter) renderSimple(buf *bytes.Buffer, r Result) error {
	tokens := r.tokens
	if len(tokens) == 0 {
		tokens = []chroma.Token{{Type: chroma.Text, Value: r.Code()}}
	}

	formatter := chromahtml.New(
		chromahtml.WithLineNumbers(true),
		chromahtml.TabWidth(h.tabWidth),
	)

	fmt.Fprintf(buf, `<div class="code-block" data-lang="%s">`, html.EscapeString(r.Lang))

	if err := formatter.Format(buf, h.style, chroma.Literator(tokens...)); err != nil {
		return err
	}

	buf.WriteString("</div>\n")

	return nil
}

func (h *Highlighter) renderWrapped(buf *bytes.Buffer, r Result) {
	fmt.Fprintf(buf, `<div class="code-block" data-lang="%s">`, html.EscapeString(r.Lang))

	if title := r.Meta.Get(titleAttr); len(title) != 0 {
		fmt.Fprintf(buf, `<div class="code-title">%s</div>`, html.EscapeString(title))
	}

	fmt.Fprintf(buf, `<pre class="chroma" style="%s"><code>`, h.inlineStyle(chroma.Background))

	numberStyle := h.inlineStyle(chroma.LineNumbers)
	styleCache := map[chroma.TokenType]string{}

	for _, line := range r.Lines {
		if line.Highlight {
			fmt.Fprintf(buf, `<span class="line highlight" data-line="%d" data-highlight="true" style="%s">`,
				line.Number, h.inlineStyle(chroma.LineHighlight))
		} else {
			fmt.Fprintf(buf, `<span class="line" data-line="%d">`, line.Number)
		}

		fmt.Fprintf(buf, `<span class="ln" style="%s">%d</span>`, numberStyle, line.Number)

		if len(line.Tokens) == 0 {
			buf.WriteString(html.EscapeString(h.expandTabs(line.Text)))
		}

		for _, token := range line.Tokens {
			css, ok := styleCache[token.Type]
			if !ok {
				css = h.inlineStyle(token.Type)
				styleCache[token.Type] = css
			}

			text := html.EscapeString(h.expandTabs(token.Value))
			if len(css) == 0 {
				buf.WriteString(text)

				continue
			}

			fmt.Fprintf(buf, `<span style="%s">%s</span>`, css, text)
		}

		buf.WriteString("</span>")
	}

	buf.WriteString("</code></pre></div>\n")
}

// inlineStyle returns the CSS for a token type, minus whatever it shares
// with the block background.
func (h *Highlighter) inlineStyle(tokenType chroma.TokenType) string {
	entry := h.style.Get(tokenType)
	if tokenType != chroma.Background {
		entry = entry.Sub(h.style.Get(chroma.Background))
	}

	return chromahtml.StyleEntryToCSS(entry)
}

func (h *Highlighter) expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", h.tabWidth))
}
