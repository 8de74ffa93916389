package site

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
)

func TestHTMLLang(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "zh-CN", htmlLang("zh-CN", "en"))
	assert.Equal(t, "zh-CN", htmlLang("zh-cn", "en"))
	assert.Equal(t, "pt-BR", htmlLang("", "pt-BR"))
	assert.Equal(t, "en", htmlLang("not a tag", "!!"))
}

func TestLocaleFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, monday.Locale(monday.LocaleZhCN), localeFor("zh-CN"))
	assert.Equal(t, monday.Locale(monday.LocaleEnUS), localeFor("en"))
	assert.Equal(t, monday.Locale(monday.LocaleEnUS), localeFor("???"))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "March 1, 2022", formatDate(date, "en"))
	assert.NotEqual(t, "March 1, 2022", formatDate(date, "fr-FR"))
}
