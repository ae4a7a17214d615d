package observability

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NoExporterWritesJSONLogs(t *testing.T) {
	logs := &bytes.Buffer{}
	instruments, shutdown, err := Init(context.Background(), Settings{
		ServiceName:    "pet-name-generator-api",
		ServiceVersion: "v0.0.0-test",
		TracesExporter: ExporterNone,
		LogLevel:       "debug",
		LogOutput:      logs,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	instruments.Logger.Debug("hello")
	assert.Contains(t, logs.String(), `"msg":"hello"`)
	assert.Contains(t, logs.String(), `"version":"v0.0.0-test"`)
	assert.NotNil(t, instruments.Tracer("test"))
	assert.NotNil(t, instruments.Meter("test"))
}

func TestInit_RejectsUnknownSettings(t *testing.T) {
	_, _, err := Init(context.Background(), Settings{ServiceName: "x", TracesExporter: "zipkin", LogOutput: &bytes.Buffer{}})
	require.Error(t, err)

	_, _, err = Init(context.Background(), Settings{ServiceName: "x", LogLevel: "loud", LogOutput: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestInstruments_NilSafe(t *testing.T) {
	var instruments *Instruments
	assert.NotNil(t, instruments.Tracer("t"))
	assert.NotNil(t, instruments.Meter("m"))
	assert.NotNil(t, instruments.TracerProviderOrGlobal())
}
