package site

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

const dateLayout = "January 2, 2006"

var supportedLocales = func() map[string]monday.Locale {
	locales := map[string]monday.Locale{}
	for _, locale := range monday.ListLocales() {
		locales[strings.ToLower(string(locale))] = locale
	}

	return locales
}()

// htmlLang canonicalises a BCP 47 tag, falling back when tag is invalid.
func htmlLang(tag, fallback string) string {
	for _, candidate := range []string{tag, fallback} {
		if strings.TrimSpace(candidate) == "" {
			continue
		}

		parsed, err := language.Parse(candidate)
		if err == nil {
			return parsed.String()
		}
	}

	return "en"
}

// formatDate renders t in the locale named by the BCP 47 tag lang.
func formatDate(t time.Time, lang string) string {
	return monday.Format(t, dateLayout, localeFor(lang))
}

func localeFor(lang string) monday.Locale {
	parsed, err := language.Parse(lang)
	if err != nil {
		return monday.LocaleEnUS
	}

	base, _ := parsed.Base()
	region, _ := parsed.Region()

	if locale, ok := supportedLocales[strings.ToLower(base.String()+"_"+region.String())]; ok {
		return locale
	}

	return monday.LocaleEnUS
}
