package channel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/logtree/record"
)

// instrumentationName identifies the meter used by Instrument.
const instrumentationName = "github.com/kbukum/logtree/channel"

// Instrumented wraps a channel and counts delivered and failed records with
// OpenTelemetry metrics, attributed by source and severity.
type Instrumented struct {
	next      Channel
	delivered metric.Int64Counter
	failed    metric.Int64Counter
}

// Instrument wraps next with record counters on the given meter. A nil meter
// uses the global meter provider.
func Instrument(next Channel, meter metric.Meter) (*Instrumented, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}
	delivered, err := meter.Int64Counter("logtree.records.delivered",
		metric.WithDescription("Records successfully delivered to the wrapped channel"))
	if err != nil {
		return nil, fmt.Errorf("creating delivered counter: %w", err)
	}
	failed, err := meter.Int64Counter("logtree.records.failed",
		metric.WithDescription("Records the wrapped channel failed to deliver"))
	if err != nil {
		return nil, fmt.Errorf("creating failed counter: %w", err)
	}
	return &Instrumented{next: next, delivered: delivered, failed: failed}, nil
}

// Log forwards the record and records the outcome.
func (c *Instrumented) Log(r record.Record) error {
	attrs := metric.WithAttributes(
		attribute.String("source", r.Source),
		attribute.String("severity", r.Level.String()),
	)
	err := c.next.Log(r)
	if err != nil {
		c.failed.Add(context.Background(), 1, attrs)
		return err
	}
	c.delivered.Add(context.Background(), 1, attrs)
	return nil
}
