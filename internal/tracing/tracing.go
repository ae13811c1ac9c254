// Package tracing installs the global OpenTelemetry tracer provider.
//
// Store and playback operations create spans through otel.Tracer; with the
// "none" exporter they go to the default no-op provider.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kobeSmallman/mobileSoundboard/internal/log"
)

// Exporter names accepted in configuration.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ServiceName is reported as service.name on every span.
const ServiceName = "soundboard"

// Options configures tracing.
type Options struct {
	Exporter string // none, stdout or otlp
	Endpoint string // host:port of the OTLP gRPC collector
	File     string // stdout exporter target; empty writes to stderr
	Version  string
}

// ShutdownFunc flushes and stops the provider.
type ShutdownFunc func(context.Context) error

func noop(context.Context) error { return nil }

// Setup installs a tracer provider for opts and returns its shutdown function.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	var (
		exporter sdktrace.SpanExporter
		closer   io.Closer
		err      error
	)

	switch opts.Exporter {
	case "", ExporterNone:
		return noop, nil
	case ExporterStdout:
		var w io.Writer = os.Stderr
		if opts.File != "" {
			if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
				return nil, fmt.Errorf("creating trace directory: %w", err)
			}
			f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // G304: configured path
			if err != nil {
				return nil, fmt.Errorf("opening trace file: %w", err)
			}
			w, closer = f, f
		}
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(w))
	case ExporterOTLP:
		clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithInsecure()}
		if opts.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracegrpc.WithEndpoint(opts.Endpoint))
		}
		exporter, err = otlptracegrpc.New(ctx, clientOpts...)
	default:
		return nil, fmt.Errorf("unknown tracing exporter %q (want none, stdout or otlp)", opts.Exporter)
	}
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("creating %s exporter: %w", opts.Exporter, err)
	}

	attrs := []attribute.KeyValue{attribute.String("service.name", ServiceName)}
	if opts.Version != "" {
		attrs = append(attrs, attribute.String("service.version", opts.Version))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attrs...)),
	)
	otel.SetTracerProvider(tp)
	log.Info(log.CatConfig, "Tracing enabled", "exporter", opts.Exporter, "endpoint", opts.Endpoint)

	return func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		if closer != nil {
			err = errors.Join(err, closer.Close())
		}
		return err
	}, nil
}
