package highlight

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Language binds a fenced code block tag to a lexer.
type Language struct {
	Tag   string
	Lexer chroma.Lexer
}

// Languages is an immutable table of supported languages keyed by tag.
type Languages struct {
	byTag map[string]chroma.Lexer
}

var defaultTags = []string{"tsx", "typescript", "scss", "bash", "markdown", "json", "go"}

// NewLanguages builds a table from the given entries. Entries with an empty
// tag or nil lexer are ignored; later entries win on duplicate tags.
func NewLanguages(langs ...Language) Languages {
	byTag := make(map[string]chroma.Lexer, len(langs))

	for _, lang := range langs {
		tag := normalizeTag(lang.Tag)
		if len(tag) == 0 || lang.Lexer == nil {
			continue
		}

		byTag[tag] = chroma.Coalesce(lang.Lexer)
	}

	return Languages{byTag: byTag}
}

// LanguagesFor builds a table resolving each tag through the chroma lexer
// registry. Unknown tags are skipped.
func LanguagesFor(tags ...string) Languages {
	langs := make([]Language, 0, len(tags))

	for _, tag := range tags {
		if lexer := lexers.Get(tag); lexer != nil {
			langs = append(langs, Language{Tag: tag, Lexer: lexer})
		}
	}

	return NewLanguages(langs...)
}

// DefaultLanguages returns the table used when no languages are configured.
func DefaultLanguages() Languages {
	return LanguagesFor(defaultTags...)
}

// Lookup returns the lexer registered for tag.
func (l Languages) Lookup(tag string) (chroma.Lexer, bool) {
	lexer, ok := l.byTag[normalizeTag(tag)]

	return lexer, ok
}

// Tags lists the registered tags in sorted order.
func (l Languages) Tags() []string {
	tags := make([]string, 0, len(l.byTag))

	for tag := range l.byTag {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
