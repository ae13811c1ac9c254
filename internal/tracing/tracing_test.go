package tracing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_None(t *testing.T) {
	for _, exporter := range []string{"", ExporterNone} {
		shutdown, err := Setup(t.Context(), Options{Exporter: exporter})
		require.NoError(t, err)
		require.NoError(t, shutdown(t.Context()))
	}
}

func TestSetup_Unknown(t *testing.T) {
	_, err := Setup(t.Context(), Options{Exporter: "zipkin"})
	require.ErrorContains(t, err, "unknown tracing exporter")
}

func TestSetup_StdoutToFile(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	path := filepath.Join(t.TempDir(), "traces", "spans.json")
	shutdown, err := Setup(t.Context(), Options{Exporter: ExporterStdout, File: path, Version: "test"})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "sounds.add")
	span.End()
	require.NoError(t, shutdown(t.Context()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sounds.add")
	assert.Contains(t, string(data), ServiceName)
}
