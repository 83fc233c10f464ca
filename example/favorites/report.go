package main

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/typed-container-go/aggregate"
	"github.com/AntonStoeckl/typed-container-go/collection"
	"github.com/AntonStoeckl/typed-container-go/container"
	"github.com/AntonStoeckl/typed-container-go/variance"
	"github.com/AntonStoeckl/typed-container-go/witness"
)

// favoritesReport is everything the demo prints.
type favoritesReport struct {
	ContainerID  string           `json:"container_id"`
	Favorites    map[string]any   `json:"favorites"`
	RejectedPut  string           `json:"rejected_put"`
	FloatPresent bool             `json:"float64_present"`
	Union        []any            `json:"union"`
	Max          int              `json:"max"`
	Flattened    []string         `json:"flattened"`
	Picked       []string         `json:"picked"`
	Drained      []any            `json:"drained_stack"`
	Metrics      map[string]int64 `json:"metrics,omitempty"`
}

func buildReport(logger container.Logger, collector container.MetricsCollector) (favoritesReport, error) {
	c, err := container.New(container.WithLogger(logger), container.WithMetrics(collector), container.WithCapacity(3))
	if err != nil {
		return favoritesReport{}, err
	}

	report := favoritesReport{
		ContainerID: c.ID().String(),
		Favorites:   make(map[string]any),
	}

	if err = fillFavorites(c); err != nil {
		return favoritesReport{}, err
	}

	if err = container.PutAny(c, witness.For[int]().Type(), "0xcafebabe"); err != nil {
		report.RejectedPut = err.Error()
	}

	_, report.FloatPresent = container.Get(c, witness.For[float64]())

	for _, t := range c.Types() {
		v, _ := container.GetAny(c, t)
		if typ, ok := v.(witness.Type); ok {
			v = typ.String()
		}

		report.Favorites[t.String()] = v
	}

	integers := collection.NewSet(1, 3, 5)
	doubles := collection.NewSet(2.0, 4.0, 6.0)
	report.Union = variance.Union(
		variance.MustUpcast[any, int](integers.ReadOnly()),
		variance.MustUpcast[any, float64](doubles.ReadOnly()),
	).Slice()

	if report.Max, err = variance.Max(collection.Of(3, 9, 4)); err != nil {
		return favoritesReport{}, err
	}

	report.Flattened = aggregate.Flatten(collection.Of("a", "b"), collection.Of[string](), collection.Of("c")).Slice()
	report.Picked = aggregate.PickTwo("Good", "Fast", "Cheap")

	drained, err := drainStack(collection.Of(1, 2, 3))
	if err != nil {
		return favoritesReport{}, err
	}
	report.Drained = drained

	return report, nil
}

func fillFavorites(c *container.Container) error {
	if err := container.Put(c, witness.For[string](), "Java"); err != nil {
		return err
	}

	if err := container.Put(c, witness.For[int](), 0xcafebabe); err != nil {
		return err
	}

	return container.Put(c, witness.For[witness.Type](), witness.For[*container.Container]().Type())
}

// drainStack pushes every number and pops them into a wider consumer.
func drainStack(numbers collection.Producer[int]) ([]any, error) {
	stack := &collection.Stack[int]{}
	stack.PushAll(numbers)

	objects := collection.NewList[any]()
	sink, err := variance.Accepting[int, any](objects)
	if err != nil {
		return nil, err
	}

	stack.PopAll(sink)

	return objects.Slice(), nil
}

// collectCounters sums every int64 counter of reader per metric name and status label.
func collectCounters(ctx context.Context, reader *sdkmetric.ManualReader) (map[string]int64, error) {
	var resourceMetrics metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &resourceMetrics); err != nil {
		return nil, err
	}

	counters := make(map[string]int64)
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			for _, dataPoint := range sum.DataPoints {
				status, _ := dataPoint.Attributes.Value("status")
				counters[fmt.Sprintf("%s{status=%s}", m.Name, status.AsString())] += dataPoint.Value
			}
		}
	}

	return counters, nil
}

func renderReport(w io.Writer, report favoritesReport) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
