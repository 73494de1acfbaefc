// pkg/ops_io/context.go

package ops_io

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/smartfinances/botops/pkg/ops_err"
	"github.com/smartfinances/botops/pkg/shared"
	"github.com/smartfinances/botops/pkg/telemetry"
)

// RuntimeContext carries everything a command run needs: the traced
// context, a scoped logger, the span, and telemetry attributes.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Span       trace.Span
	Timestamp  time.Time
	Command    string
	Attributes map[string]string
}

// NewContext sets up tracing and logging for one command invocation.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	logger := zap.L().With(
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:        ctx,
		Span:       span,
		Log:        logger,
		Timestamp:  time.Now(),
		Command:    cmdName,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome, records the final telemetry span, and flushes.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	success := (*errPtr == nil)

	if success {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("args", strings.Join(os.Args[1:], " ")),
		attribute.String("version", shared.Version),
		attribute.String("error_type", classifyError(*errPtr)),
	}
	if telemetry.IsEnabled() {
		attrs = append(attrs, attribute.String("anon_id", telemetry.AnonTelemetryID()))
	}
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}

	_, span := telemetry.Start(rc.Ctx, rc.Command, attrs...)
	span.End()

	shared.SafeSync()
}

func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if ops_err.IsExpectedUserError(err) {
		return "user"
	}
	return "system"
}
