// pkg/telemetry/telemetry.go

package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var tracer trace.Tracer

// Init configures OpenTelemetry; call this early in main().
// Tracing is opt-in: spans go to a local JSONL file, never the network.
func Init(service string) error {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return nil
	}

	telemetryDir := filepath.Join(stateDir(), "telemetry")
	if err := os.MkdirAll(telemetryDir, 0o755); err != nil {
		return cerr.Wrap(err, "create telemetry directory")
	}

	telemetryFile := filepath.Join(telemetryDir, "telemetry.jsonl")
	file, err := os.OpenFile(telemetryFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return cerr.Wrap(err, "open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(), // spans already carry timestamps
	)
	if err != nil {
		file.Close()
		return cerr.Wrap(err, "create file exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("service.name", service),
				attribute.String("host.name", hostname()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	return nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("botops")
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// IsEnabled reports whether the opt-in marker file exists.
func IsEnabled() bool {
	_, err := os.Stat(filepath.Join(stateDir(), "telemetry_on"))
	return err == nil
}

// AnonTelemetryID returns a stable random identifier for this install.
func AnonTelemetryID() string {
	idFile := filepath.Join(stateDir(), "telemetry_id")
	if data, err := os.ReadFile(idFile); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}
	id := uuid.NewString()
	if err := os.MkdirAll(stateDir(), 0o755); err == nil {
		_ = os.WriteFile(idFile, []byte(id+"\n"), 0o644)
	}
	return id
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".botops")
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
