// Package telemetry configures OpenTelemetry metrics.
//
// Metrics are disabled by default. When enabled, readings are exported to
// stdout on a fixed interval; otherwise a no-op meter provider is installed
// so instruments cost nothing.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/heartmarshall/casedesk-backend/internal/config"
)

const instrumentationScope = "github.com/heartmarshall/casedesk-backend"

// Init installs the global meter provider. The returned function flushes and
// stops exporters; it is safe to call when telemetry is disabled.
func Init(ctx context.Context, cfg config.TelemetryConfig, serviceName, version string) (func(context.Context) error, error) {
	if !cfg.Enabled {
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
		return func(context.Context) error { return nil }, nil
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)

	exp, err := stdoutmetric.New()
	if err != nil {
		return nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(cfg.Interval))),
	)
	otel.SetMeterProvider(mp)

	return mp.Shutdown, nil
}

// Meter returns a meter scoped under the module path. An empty name yields
// the module scope itself.
func Meter(name string) metric.Meter {
	if name == "" {
		return otel.Meter(instrumentationScope)
	}
	return otel.Meter(instrumentationScope + "/" + name)
}
