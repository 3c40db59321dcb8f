// Package observe builds the bot's zap logger and its OpenTelemetry metric
// instruments. Metrics are exported for Prometheus scraping through
// [InitProvider].
package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/KirkDiggler/naruto2d6-discord"

// Metrics holds the metric instruments. A nil *Metrics is valid and records
// nothing, so services and tests can run without a meter provider.
type Metrics struct {
	// MoveRolls counts resolved moves by tier and result
	MoveRolls metric.Int64Counter

	// Rerolls counts reroll attempts by mode and status (applied, refused)
	Rerolls metric.Int64Counter

	// Notices counts notices shown to players by level
	Notices metric.Int64Counter

	// ResourceMutations counts resource pool operations by op
	ResourceMutations metric.Int64Counter

	// InteractionDuration tracks Discord interaction handling time by
	// domain and action
	InteractionDuration metric.Float64Histogram
}

var latencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
}

// NewMetrics creates every instrument on mp
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.MoveRolls, err = m.Int64Counter("n2d6.move.rolls",
		metric.WithDescription("Resolved moves by advantage tier and result."),
	); err != nil {
		return nil, err
	}
	if met.Rerolls, err = m.Int64Counter("n2d6.move.rerolls",
		metric.WithDescription("Reroll attempts by mode and status."),
	); err != nil {
		return nil, err
	}
	if met.Notices, err = m.Int64Counter("n2d6.notices",
		metric.WithDescription("Notices shown to players by level."),
	); err != nil {
		return nil, err
	}
	if met.ResourceMutations, err = m.Int64Counter("n2d6.resource.mutations",
		metric.WithDescription("Resource pool operations by kind."),
	); err != nil {
		return nil, err
	}
	if met.InteractionDuration, err = m.Float64Histogram("n2d6.interaction.duration",
		metric.WithDescription("Discord interaction handling latency by domain and action."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// RecordRoll counts a resolved move
func (m *Metrics) RecordRoll(ctx context.Context, tier, result string) {
	if m == nil {
		return
	}
	m.MoveRolls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tier", tier),
		attribute.String("result", result),
	))
}

// RecordReroll counts a reroll attempt
func (m *Metrics) RecordReroll(ctx context.Context, mode, status string) {
	if m == nil {
		return
	}
	m.Rerolls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("status", status),
	))
}

// RecordNotice counts a notice shown to a player
func (m *Metrics) RecordNotice(ctx context.Context, level string) {
	if m == nil {
		return
	}
	m.Notices.Add(ctx, 1, metric.WithAttributes(attribute.String("level", level)))
}

// RecordResourceMutation counts a resource pool operation
func (m *Metrics) RecordResourceMutation(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.ResourceMutations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// RecordInteraction observes how long an interaction took, in seconds
func (m *Metrics) RecordInteraction(ctx context.Context, domain, action string, seconds float64) {
	if m == nil {
		return
	}
	m.InteractionDuration.Record(ctx, seconds, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("action", action),
	))
}
