package logging_test

import (
	"context"
	"testing"

	"github.com/ezerfernandes/mdfolio/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	name   string
	fields []map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithContext(context.Context) logging.Logger { return r }

func (r *recordingLogger) WithFields(fields map[string]any) logging.Logger {
	r.fields = append(r.fields, fields)

	return r
}

type recordingProvider struct {
	loggers map[string]*recordingLogger
}

func (p *recordingProvider) GetLogger(name string) logging.Logger {
	logger := &recordingLogger{name: name}
	p.loggers[name] = logger

	return logger
}

func TestModuleLogger(t *testing.T) {
	t.Parallel()

	provider := &recordingProvider{loggers: map[string]*recordingLogger{}}

	logger := logging.ModuleLogger(provider, "mdfolio.site")
	require.NotNil(t, logger)

	rec := provider.loggers["mdfolio.site"]
	require.NotNil(t, rec)
	require.Len(t, rec.fields, 1)
	assert.Equal(t, "mdfolio.site", rec.fields[0]["module"])
}

func TestModuleLoggerDefaults(t *testing.T) {
	t.Parallel()

	provider := &recordingProvider{loggers: map[string]*recordingLogger{}}

	logging.ModuleLogger(provider, "")
	assert.Contains(t, provider.loggers, "mdfolio")

	logger := logging.ModuleLogger(nil, "x")
	require.NotNil(t, logger)
	logger.Info("dropped", "key", "value")
	assert.NotNil(t, logger.WithContext(context.Background()))
}

func TestWithFieldsCopies(t *testing.T) {
	t.Parallel()

	rec := &recordingLogger{}
	fields := map[string]any{"path": "a.md"}

	logging.WithFields(rec, fields)
	fields["path"] = "b.md"

	require.Len(t, rec.fields, 1)
	assert.Equal(t, "a.md", rec.fields[0]["path"])

	assert.Same(t, rec, logging.WithFields(rec, nil))
}
