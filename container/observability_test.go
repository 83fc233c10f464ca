package container_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/typed-container-go/container"
	"github.com/AntonStoeckl/typed-container-go/testutil/containertest"
	"github.com/AntonStoeckl/typed-container-go/witness"
)

func Test_Container_LogsStoreOverwriteAndMiss(t *testing.T) {
	spy := containertest.NewLogHandlerSpy(false)
	c := newContainer(t, container.WithLogger(slog.New(spy)))

	require.NoError(t, container.Put(c, witness.For[string](), "Java"))
	require.NoError(t, container.Put(c, witness.For[string](), "Go"))
	_, _ = container.Get(c, witness.For[int]())

	assert.True(t, spy.HasLogWithMessage(slog.LevelDebug, "value stored").
		WithAttr("witness", "string").
		WithAttr("container_id", c.ID().String()).
		WithAttr("witness_id", witness.For[string]().Type().ID().String()).
		Assert())
	assert.True(t, spy.HasLogWithMessage(slog.LevelDebug, "value overwritten").WithAttrKey("entries").Assert())
	assert.False(t, spy.HasLogWithMessage(slog.LevelDebug, "no value for witness").WithAttrKey("witness_id").Assert())
	assert.True(t, spy.HasLogWithMessage(slog.LevelDebug, "no value for witness").WithAttr("witness", "int").Assert())
	assert.Equal(t, 3, spy.GetRecordCount())
}

func Test_Container_LogsRejectedPutAndStillReturnsError(t *testing.T) {
	spy := containertest.NewLogHandlerSpy(false)
	c := newContainer(t, container.WithLogger(slog.New(spy)))

	err := container.PutAny(c, witness.For[string]().Type(), 123)

	assert.ErrorIs(t, err, witness.ErrTypeMismatch)
	assert.True(t, spy.HasLogWithMessage(slog.LevelWarn, "put rejected: value does not match witness").
		WithAttr("witness", "string").
		WithAttr("actual_type", "int").
		Assert())
}

func Test_Container_RecordsMetrics(t *testing.T) {
	spy := containertest.NewMetricsCollectorSpy()
	c := newContainer(t, container.WithMetrics(spy))

	require.NoError(t, container.Put(c, witness.For[string](), "Java"))
	require.NoError(t, container.Put(c, witness.For[int](), 42))
	require.Error(t, container.PutAny(c, witness.For[int]().Type(), "42"))
	_, _ = container.Get(c, witness.For[string]())
	_, _ = container.Get(c, witness.For[float64]())

	assert.Equal(t, 2, spy.CountCounterRecords("container_put_total", "success"))
	assert.Equal(t, 1, spy.CountCounterRecords("container_put_total", "type_mismatch"))
	assert.Equal(t, 1, spy.CountCounterRecords("container_get_total", "hit"))
	assert.Equal(t, 1, spy.CountCounterRecords("container_get_total", "miss"))

	values := spy.GetValueRecords()
	require.Len(t, values, 2)
	assert.Equal(t, "container_entries", values[1].Metric)
	assert.Equal(t, 2.0, values[1].Value)

	counters := spy.GetCounterRecords()
	require.Len(t, counters, 5)
	assert.Equal(t, map[string]string{"status": "type_mismatch", "witness": "int"}, counters[2].Labels)
}

func Test_Container_RecordsOperationDurations(t *testing.T) {
	spy := containertest.NewMetricsCollectorSpy()
	c := newContainer(t, container.WithMetrics(spy))

	require.NoError(t, container.Put(c, witness.For[string](), "Java"))
	require.Error(t, container.PutAny(c, witness.For[string]().Type(), 1))
	_, _ = container.Get(c, witness.For[string]())
	_, _ = container.Get(c, witness.For[int]())

	durations := spy.GetDurationRecords()
	require.Len(t, durations, 4)

	expectedLabels := []map[string]string{
		{"operation": "put", "status": "success"},
		{"operation": "put", "status": "type_mismatch"},
		{"operation": "get", "status": "hit"},
		{"operation": "get", "status": "miss"},
	}
	for i, record := range durations {
		assert.Equal(t, "container_op_duration_seconds", record.Metric)
		assert.Equal(t, expectedLabels[i], record.Labels)
		assert.GreaterOrEqual(t, record.Duration, time.Duration(0))
	}
}

func Test_Container_SpiesCanBeReset(t *testing.T) {
	logSpy := containertest.NewLogHandlerSpy(false)
	metricsSpy := containertest.NewMetricsCollectorSpy()
	c := newContainer(t, container.WithLogger(slog.New(logSpy)), container.WithMetrics(metricsSpy))

	require.NoError(t, container.Put(c, witness.For[string](), "Java"))
	require.Equal(t, 1, logSpy.GetRecordCount())

	logSpy.Reset()
	metricsSpy.Reset()

	_, _ = container.Get(c, witness.For[string]())

	assert.Equal(t, 0, logSpy.GetRecordCount(), "a hit is not logged")
	assert.Empty(t, metricsSpy.GetValueRecords())
	assert.Len(t, metricsSpy.GetCounterRecords(), 1)
	assert.Len(t, metricsSpy.GetDurationRecords(), 1)
	assert.Equal(t, 1, metricsSpy.CountCounterRecords("container_get_total", "hit"))
}

func Test_Container_WithoutObservabilityIsSilent(t *testing.T) {
	c := newContainer(t)

	assert.NotPanics(t, func() {
		_ = container.Put(c, witness.For[string](), "Java")
		_ = container.PutAny(c, witness.For[string]().Type(), 1)
		_, _ = container.Get(c, witness.For[int]())
	})
}

func Test_Container_WithoutObservabilityDoesNotAllocateOnPut(t *testing.T) {
	c := newContainer(t)
	w := witness.For[int]()
	require.NoError(t, container.Put(c, w, 1))

	allocs := testing.AllocsPerRun(100, func() {
		_ = container.Put(c, w, 7)
	})

	assert.Zero(t, allocs, "log attributes and witness IDs are only built for a configured logger")
}
