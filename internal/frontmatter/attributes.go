package frontmatter

import (
	"fmt"
	"strings"
	"time"
)

// Attributes holds the decoded front-matter keys of a document.
type Attributes map[string]any

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// String returns the value for key formatted as a string, or "" when the key
// is missing or nil.
func (a Attributes) String(key string) string {
	value, ok := a[key]
	if !ok || value == nil {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// Title returns the "title" attribute.
func (a Attributes) Title() string {
	return a.String("title")
}

// Description returns the "description" attribute.
func (a Attributes) Description() string {
	return a.String("description")
}

// Lang returns the "lang" attribute.
func (a Attributes) Lang() string {
	return a.String("lang")
}

// Date returns the "date" attribute as a time. It reports false when the key
// is missing or holds a value that is not a recognised date.
func (a Attributes) Date() (time.Time, bool) {
	switch value := a["date"].(type) {
	case time.Time:
		return value, true
	case string:
		value = strings.TrimSpace(value)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, true
			}
		}
	}

	return time.Time{}, false
}

// Keywords returns the "meta.keyword" list. A scalar keyword is returned as a
// single element list.
func (a Attributes) Keywords() []string {
	meta, ok := a["meta"].(map[string]any)
	if !ok {
		return nil
	}

	switch value := meta["keyword"].(type) {
	case []any:
		keywords := make([]string, 0, len(value))

		for _, item := range value {
			if item != nil {
				keywords = append(keywords, fmt.Sprint(item))
			}
		}

		return keywords
	case []string:
		return append([]string(nil), value...)
	case string:
		return []string{value}
	}

	return nil
}
