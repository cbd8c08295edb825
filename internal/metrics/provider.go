// Package metrics records OpenTelemetry metrics into a Prometheus registry. Commands are
// short-lived batch jobs, so the registry is written in the text exposition format to a
// file read by the node exporter's textfile collector instead of being scraped.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Provider owns the meter provider and the registry its exporter feeds.
type Provider struct {
	meterProvider *metric.MeterProvider
	exporter      *promexporter.Exporter
	registry      *prometheus.Registry
	lastFlush     prometheus.Gauge
}

// NewProvider builds a meter provider whose readings land in a private registry.
// The registry also carries <namespace>_last_flush_timestamp_seconds.
func NewProvider(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
		promexporter.WithoutScopeInfo(),
		promexporter.WithoutTargetInfo(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	lastFlush := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_flush_timestamp_seconds",
		Help:      "Unix time at which the metrics textfile was last written.",
	})
	if err := registry.Register(lastFlush); err != nil {
		return nil, fmt.Errorf("failed to register flush gauge: %w", err)
	}

	return &Provider{
		meterProvider: metric.NewMeterProvider(metric.WithReader(exporter)),
		exporter:      exporter,
		registry:      registry,
		lastFlush:     lastFlush,
	}, nil
}

// Gatherer exposes the underlying registry.
func (p *Provider) Gatherer() prometheus.Gatherer {
	return p.registry
}

// WriteTextfile stamps the flush gauge and writes the registry to path. WriteToTextfile
// renames a temporary file into place, so collectors never read a partial file.
func (p *Provider) WriteTextfile(path string) error {
	p.lastFlush.Set(float64(time.Now().Unix()))
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// MeterProvider returns the provider recorders create their meters from.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
