package infra

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/pkg/bininfo"
	"mergington.dev/backend/internal/pkg/observability"
)

// TracingInit installs a global OpenTelemetry tracer provider when tracing is enabled.
// Without it the otel globals stay no-op.
func TracingInit(conf *appconfig.Config, lc fx.Lifecycle) error {
	if !conf.TracingEnabled {
		log.Debug().Msg("tracing is disabled")
		return nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(observability.ServiceName),
			semconv.ServiceVersion(bininfo.Version),
		)),
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
	}

	for _, name := range conf.TracingExporters {
		exporter, err := newSpanExporter(name)
		if err != nil {
			return err
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tracerProvider := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)

	lc.Append(fx.Hook{
		OnStop: tracerProvider.Shutdown,
	})

	log.Info().
		Strs("exporters", conf.TracingExporters).
		Float64("sampleRate", conf.TracingSampleRate).
		Msg("tracing enabled")
	return nil
}

func newSpanExporter(name string) (tracesdk.SpanExporter, error) {
	switch name {
	case "otlp":
		// endpoint and credentials come from the standard OTEL_EXPORTER_OTLP_* environment variables
		return otlptracegrpc.New(context.Background())
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, errors.Errorf("infra: tracing: unknown exporter %q", name)
	}
}
