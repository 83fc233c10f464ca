// Command favorites demonstrates the typed container together with the producer/consumer
// adapters and the variadic aggregator, and prints the outcome as a JSON report.
//
// Configuration is read from the environment:
//
//	FAVORITES_LOG_LEVEL   debug|info|warn|error (default info)
//	FAVORITES_LOG_FORMAT  text|json (default text)
package main

import (
	"context"
	"log"
	"maps"
	"os"
	"slices"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/AntonStoeckl/typed-container-go/oteladapters"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("favorites: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		return err
	}

	logger := cfg.newLogger(os.Stderr)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(ctx) }()

	collector := oteladapters.NewMetricsCollector(provider.Meter("favorites"))

	report, err := buildReport(logger, collector)
	if err != nil {
		return err
	}

	for _, name := range slices.Sorted(maps.Keys(report.Favorites)) {
		logger.Info("favorite", "witness", name, "value", report.Favorites[name])
	}

	if report.Metrics, err = collectCounters(ctx, reader); err != nil {
		return err
	}

	return renderReport(os.Stdout, report)
}
