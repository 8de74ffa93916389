package gologger

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"", "json", "console", "PRETTY"} {
		p, err := NewProvider(Config{Level: "debug", Format: format})
		require.NoError(t, err, format)

		logger := p.GetLogger("mdfolio.test")
		require.NotNil(t, logger)
		require.NotNil(t, p.GetLogger(" "))
	}

	_, err := NewProvider(Config{Format: "xml"})
	require.Error(t, err)
}

func TestNilProvider(t *testing.T) {
	t.Parallel()

	var p *Provider

	logger := p.GetLogger("x")
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestAdapterDelegates(t *testing.T) {
	t.Parallel()

	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Trace("trace", "key", "value")
	adapted.Debug("debug")
	adapted.Info("info")
	adapted.Warn("warn")
	adapted.Error("error")
	adapted.Fatal("fatal")

	assert.Equal(t, []string{"trace", "debug", "info", "warn", "error", "fatal"}, stub.calls)

	fields := map[string]any{"module": "blog"}
	require.NotNil(t, adapted.(*adapter).WithFields(fields))

	fields["module"] = "site"
	require.Len(t, stub.fields, 1)
	assert.Equal(t, "blog", stub.fields[0]["module"])

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	adapted.WithContext(ctx)
	require.Len(t, stub.contexts, 1)
	assert.Equal(t, ctx, stub.contexts[0])
}

func TestNormalizeLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, glog.Warn, normalizeLevel(" Warning "))
	assert.Equal(t, glog.Trace, normalizeLevel("trace"))
	assert.Equal(t, "", normalizeLevel("loud"))
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)

	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	s.fields = append(s.fields, fields)

	return s
}
