package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
site:
  title: vincenteof.eth
  author: vincenteof
  links:
    - name: Github
      url: https://github.com/vincenteof
content:
  owner: vincenteof
  repo: blog
  cache_ttl: 30s
render:
  style: dracula
log:
  level: debug
`

func TestParseMergesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "vincenteof.eth", cfg.Site.Title)
	assert.Equal(t, "en", cfg.Site.Lang)
	require.Len(t, cfg.Site.Links, 1)
	assert.Equal(t, "https://github.com/vincenteof", cfg.Site.Links[0].URL)

	assert.Equal(t, SourceGitHub, cfg.Content.Source)
	assert.Equal(t, "main", cfg.Content.Ref)
	assert.Equal(t, 30*time.Second, cfg.Content.CacheTTL)
	assert.Equal(t, []string{"README.md"}, cfg.Content.Exclude)
	assert.Equal(t, "content/blog", cfg.Content.BlogDir)

	assert.Equal(t, "dracula", cfg.Render.Style)
	assert.Equal(t, 2, cfg.Render.TabWidth)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, ":3000", cfg.Server.Addr)

	require.NoError(t, cfg.Validate())
}

func TestParseKeepsExplicitZeroValues(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("content:\n  cache_ttl: 0s\n  exclude: []\n  concurrency: 0\n  watch: false\n"))
	require.NoError(t, err)

	assert.Zero(t, cfg.Content.CacheTTL)
	assert.Empty(t, cfg.Content.Exclude)
	assert.Zero(t, cfg.Content.Concurrency)
	assert.Equal(t, "main", cfg.Content.Ref)
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout)
}

func TestParseNormalizesSource(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("content:\n  source: \" Dir \"\n  dir: ./site\n"))
	require.NoError(t, err)

	assert.Equal(t, SourceDir, cfg.Content.Source)
	require.NoError(t, cfg.Validate())
}

func TestOverride(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Override(Config{Log: Log{Level: "debug"}}))

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, Default().Content, cfg.Content)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("site: [unclosed"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	t.Setenv("MDFOLIO_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Content.Token)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Server, cfg.Server)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{"MDFOLIO_GITHUB_TOKEN": " primary ", "GITHUB_TOKEN": "secondary"}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]

		return value, ok
	}

	cfg := Default()
	cfg.applyEnv(lookup)
	assert.Equal(t, "primary", cfg.Content.Token)

	cfg = Default()
	cfg.Content.Token = "file"
	cfg.applyEnv(lookup)
	assert.Equal(t, "file", cfg.Content.Token)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.ErrorIs(t, cfg.Validate(), ErrRepoRequired)

	cfg.Content.Source = SourceDir
	require.ErrorIs(t, cfg.Validate(), ErrDirRequired)

	cfg.Content.Dir = "./site"
	require.NoError(t, cfg.Validate())

	cfg.Content.Source = "s3"
	require.ErrorIs(t, cfg.Validate(), ErrUnknownSource)
}
