package observe

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/KirkDiggler/naruto2d6-discord/internal/config"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumFor(t *testing.T, m *metricdata.Metrics, attrs ...attribute.KeyValue) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected Sum[int64], got %T", m.Data)

	want := attribute.NewSet(attrs...)
	var total int64
	for _, dp := range sum.DataPoints {
		if dp.Attributes.Equals(&want) {
			total += dp.Value
		}
	}
	return total
}

func TestRecordRoll(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordRoll(ctx, "normal", "fullSuccess")
	m.RecordRoll(ctx, "normal", "fullSuccess")
	m.RecordRoll(ctx, "advantage", "failure")

	rm := collect(t, reader)
	got := findMetric(rm, "n2d6.move.rolls")
	require.NotNil(t, got)

	assert.Equal(t, int64(2), sumFor(t, got, attribute.String("result", "fullSuccess"), attribute.String("tier", "normal")))
	assert.Equal(t, int64(1), sumFor(t, got, attribute.String("result", "failure"), attribute.String("tier", "advantage")))
}

func TestRecordRerollAndNotices(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordReroll(ctx, "momentum", "applied")
	m.RecordReroll(ctx, "momentum", "refused")
	m.RecordNotice(ctx, "warn")
	m.RecordResourceMutation(ctx, "increase")

	rm := collect(t, reader)

	rerolls := findMetric(rm, "n2d6.move.rerolls")
	require.NotNil(t, rerolls)
	assert.Equal(t, int64(1), sumFor(t, rerolls, attribute.String("mode", "momentum"), attribute.String("status", "refused")))

	notices := findMetric(rm, "n2d6.notices")
	require.NotNil(t, notices)
	assert.Equal(t, int64(1), sumFor(t, notices, attribute.String("level", "warn")))

	mutations := findMetric(rm, "n2d6.resource.mutations")
	require.NotNil(t, mutations)
	assert.Equal(t, int64(1), sumFor(t, mutations, attribute.String("op", "increase")))
}

func TestRecordInteraction(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordInteraction(context.Background(), "move", "reroll", 0.042)

	rm := collect(t, reader)
	got := findMetric(rm, "n2d6.interaction.duration")
	require.NotNil(t, got)

	hist, ok := got.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	assert.InDelta(t, 0.042, hist.DataPoints[0].Sum, 1e-9)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordRoll(ctx, "normal", "failure")
		m.RecordReroll(ctx, "free", "applied")
		m.RecordNotice(ctx, "info")
		m.RecordResourceMutation(ctx, "create")
		m.RecordInteraction(ctx, "sheet", "view", 1)
	})
}

func TestInitProvider_ServesPrometheus(t *testing.T) {
	ctx := context.Background()
	p, err := InitProvider(ctx, ProviderConfig{
		ServiceVersion: "test",
		Registry:       prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(ctx) })

	p.Metrics.RecordRoll(ctx, "normal", "criticalSuccess")

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "n2d6_move_rolls"), "exposition should contain the rolls counter")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(config.LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = NewLogger(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
