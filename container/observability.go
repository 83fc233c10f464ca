package container

import (
	"fmt"
	"time"

	"github.com/AntonStoeckl/typed-container-go/witness"
)

// Logger interface for diagnostic logging of container operations.
// It is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting container operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

const (
	metricPutTotal   = "container_put_total"
	metricGetTotal   = "container_get_total"
	metricEntries    = "container_entries"
	metricDuration   = "container_op_duration_seconds"
	labelStatus      = "status"
	labelWitness     = "witness"
	labelOperation   = "operation"
	operationPut     = "put"
	operationGet     = "get"
	statusSuccess    = "success"
	statusMismatch   = "type_mismatch"
	statusHit        = "hit"
	statusMiss       = "miss"
	logMsgStored     = "value stored"
	logMsgOverwrote  = "value overwritten"
	logMsgRejected   = "put rejected: value does not match witness"
	logMsgMiss       = "no value for witness"
	logAttrContainer = "container_id"
	logAttrWitness   = "witness"
	logAttrWitnessID = "witness_id"
	logAttrActual    = "actual_type"
	logAttrEntries   = "entries"
)

// logStored logs a successful put. Attributes are only built when a logger is set.
func (c *Container) logStored(t witness.Type, overwritten bool) {
	if c.logger == nil {
		return
	}

	msg := logMsgStored
	if overwritten {
		msg = logMsgOverwrote
	}

	c.logger.Debug(
		msg,
		logAttrContainer, c.id.String(),
		logAttrWitness, t.String(),
		logAttrWitnessID, t.ID().String(),
		logAttrEntries, len(c.entries),
	)
}

func (c *Container) logRejected(t witness.Type, value any) {
	if c.logger == nil {
		return
	}

	c.logger.Warn(
		logMsgRejected,
		logAttrContainer, c.id.String(),
		logAttrWitness, t.String(),
		logAttrActual, fmt.Sprintf("%T", value),
	)
}

func (c *Container) logMiss(t witness.Type) {
	if c.logger == nil {
		return
	}

	c.logger.Debug(logMsgMiss, logAttrContainer, c.id.String(), logAttrWitness, t.String())
}

func (c *Container) recordPut(t witness.Type, status string, duration time.Duration) {
	if c.metricsCollector == nil {
		return
	}

	c.metricsCollector.IncrementCounter(metricPutTotal, map[string]string{
		labelStatus:  status,
		labelWitness: t.String(),
	})

	c.metricsCollector.RecordDuration(metricDuration, duration, map[string]string{
		labelOperation: operationPut,
		labelStatus:    status,
	})

	if status == statusSuccess {
		c.metricsCollector.RecordValue(metricEntries, float64(len(c.entries)), nil)
	}
}

func (c *Container) recordGet(t witness.Type, status string, duration time.Duration) {
	if c.metricsCollector == nil {
		return
	}

	c.metricsCollector.IncrementCounter(metricGetTotal, map[string]string{
		labelStatus:  status,
		labelWitness: t.String(),
	})

	c.metricsCollector.RecordDuration(metricDuration, duration, map[string]string{
		labelOperation: operationGet,
		labelStatus:    status,
	})
}
