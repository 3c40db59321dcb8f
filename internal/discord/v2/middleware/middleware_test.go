package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
	"github.com/KirkDiggler/naruto2d6-discord/internal/observe"
)

func okHandler(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return &core.HandlerResult{Response: core.NewResponse("ok")}, nil
}

func TestArbiterMiddleware(t *testing.T) {
	cfg := &ArbiterConfig{RoleIDs: []string{"role-arbiter"}, AdministratorsAreArbiters: true}

	tests := []struct {
		name string
		ctx  *core.TestInteractionContext
		want bool
	}{
		{
			name: "arbiter role",
			ctx:  core.NewTestInteractionContext().AsCommand("move").WithRoles("role-player", "role-arbiter"),
			want: true,
		},
		{
			name: "player role",
			ctx:  core.NewTestInteractionContext().AsCommand("move").WithRoles("role-player"),
			want: false,
		},
		{
			name: "no member (direct message)",
			ctx:  core.NewTestInteractionContext().AsCommand("move"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen bool
			h := ArbiterMiddleware(cfg)(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
				seen = ctx.IsArbiter
				return nil, nil
			}))

			_, err := h.Handle(tt.ctx.InteractionContext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seen)
		})
	}

	t.Run("administrator", func(t *testing.T) {
		ctx := core.NewTestInteractionContext().AsCommand("move").WithRoles()
		ctx.Member.Permissions = discordgo.PermissionAdministrator

		var seen bool
		h := ArbiterMiddleware(cfg)(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			seen = ctx.IsArbiter
			return nil, nil
		}))
		_, err := h.Handle(ctx.InteractionContext)
		require.NoError(t, err)
		assert.True(t, seen)
	})
}

func TestRequireArbiter(t *testing.T) {
	h := RequireArbiter(okHandler)

	_, err := h(core.NewTestInteractionContext().InteractionContext)
	var handlerErr *core.HandlerError
	require.ErrorAs(t, err, &handlerErr)
	assert.Equal(t, core.ErrorCodeForbidden, handlerErr.Code)

	result, err := h(core.NewTestInteractionContext().AsArbiter().InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Response.Content)
}

func TestGuildOnlyMiddleware(t *testing.T) {
	h := GuildOnlyMiddleware()(core.HandlerFunc(okHandler))

	result, err := h.Handle(core.NewTestInteractionContext().WithGuildID("").InteractionContext)
	require.NoError(t, err)
	assert.True(t, result.Response.Ephemeral)

	result, err = h.Handle(core.NewTestInteractionContext().InteractionContext)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Response.Content)
}

func TestErrorMiddleware(t *testing.T) {
	obsCore, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(obsCore)

	refused := ErrorMiddleware(logger)(coreHandler(apperr.NotFoundf("Naruto has no move %q", "Rasengan")))
	failed := ErrorMiddleware(logger)(coreHandler(errors.New("boom")))

	result, err := refused.Handle(testCtx())
	require.NoError(t, err)
	assert.Equal(t, `Naruto has no move "Rasengan"`, result.Response.Content)
	assert.True(t, result.Response.Ephemeral)

	result, err = failed.Handle(testCtx())
	require.NoError(t, err)
	assert.Equal(t, "Something went wrong. Please try again later.", result.Response.Content)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestRecoveryMiddleware(t *testing.T) {
	obsCore, logs := observer.New(zapcore.ErrorLevel)
	h := RecoveryMiddleware(zap.New(obsCore))(panicHandler{})

	result, err := h.Handle(testCtx())
	require.NoError(t, err)
	assert.Contains(t, result.Response.Content, "unexpected error")
	assert.Equal(t, 1, logs.FilterMessage("panic recovered in handler").Len())
}

func TestRateLimitMiddleware_Memory(t *testing.T) {
	store := NewMemoryRateLimitStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	h := UserRateLimitMiddleware(2, time.Minute, store)(core.HandlerFunc(okHandler))

	for i := 0; i < 2; i++ {
		result, err := h.Handle(testCtx())
		require.NoError(t, err)
		assert.Equal(t, "ok", result.Response.Content)
	}

	result, err := h.Handle(testCtx())
	require.NoError(t, err)
	assert.True(t, result.Response.Ephemeral)
	assert.Contains(t, result.Response.Content, "too fast")

	now = now.Add(2 * time.Minute)
	result, err = h.Handle(testCtx())
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Response.Content)
}

func expectHit(mock redismock.ClientMock, key string, count int64) {
	mock.ExpectTxPipeline()
	mock.ExpectIncr(key).SetVal(count)
	mock.ExpectExpireNX(key, time.Minute).SetVal(count == 1)
	mock.ExpectTxPipelineExec()
}

func TestRedisRateLimitStore(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisRateLimitStore(client, "")
	ctx := context.Background()

	expectHit(mock, "ratelimit:user-1", 1)
	expectHit(mock, "ratelimit:user-1", 2)

	count, err := store.Increment(ctx, "user-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.Increment(ctx, "user-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	mock.ExpectTxPipeline()
	mock.ExpectIncr("ratelimit:user-2").SetErr(errors.New("connection refused"))
	_, err = store.Increment(ctx, "user-2", time.Minute)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRateLimitStore_EveryHitRearmsTheWindow(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisRateLimitStore(client, "ratelimit:move:")
	ctx := context.Background()

	// The first hit fails before the key gets an expiry.
	mock.ExpectTxPipeline()
	mock.ExpectIncr("ratelimit:move:user-1").SetVal(1)
	mock.ExpectExpireNX("ratelimit:move:user-1", time.Minute).SetErr(errors.New("READONLY You can't write against a read only replica"))
	_, err := store.Increment(ctx, "user-1", time.Minute)
	require.Error(t, err)

	// Later hits still send the expiry.
	mock.ExpectTxPipeline()
	mock.ExpectIncr("ratelimit:move:user-1").SetVal(2)
	mock.ExpectExpireNX("ratelimit:move:user-1", time.Minute).SetVal(true)
	mock.ExpectTxPipelineExec()

	count, err := store.Increment(ctx, "user-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimitMiddleware_StoreFailureLetsRequestThrough(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectTxPipeline()
	mock.ExpectIncr("ratelimit:test-user-123").SetErr(errors.New("connection refused"))

	h := UserRateLimitMiddleware(1, time.Minute, NewRedisRateLimitStore(client, ""))(core.HandlerFunc(okHandler))

	result, err := h.Handle(testCtx())
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Response.Content)
}

func TestMetricsMiddleware(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := observe.NewMetrics(mp)
	require.NoError(t, err)

	h := MetricsMiddleware(metrics)(core.HandlerFunc(okHandler))
	_, err = h.Handle(core.NewTestInteractionContext().AsComponent("move:reroll:rec-1:free").InteractionContext)
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var count uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if hist, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == "n2d6.interaction.duration" {
				for _, dp := range hist.DataPoints {
					count += dp.Count
				}
			}
		}
	}
	assert.Equal(t, uint64(1), count)

	// a nil recorder is a no-op
	_, err = MetricsMiddleware(nil)(core.HandlerFunc(okHandler)).Handle(testCtx())
	assert.NoError(t, err)
}

func TestLoggingMiddleware(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	h := LoggingMiddleware(zap.New(obsCore))(coreHandler(nil))

	_, err := h.Handle(testCtx())
	require.NoError(t, err)

	entries := logs.FilterMessage("interaction handled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "move", entries[0].ContextMap()["domain"])
	assert.Equal(t, "roll", entries[0].ContextMap()["action"])
}

type panicHandler struct{}

func (panicHandler) CanHandle(*core.InteractionContext) bool { return true }

func (panicHandler) Handle(*core.InteractionContext) (*core.HandlerResult, error) {
	panic("nil map write")
}

func coreHandler(err error) core.Handler {
	return core.HandlerFunc(func(*core.InteractionContext) (*core.HandlerResult, error) {
		if err != nil {
			return nil, err
		}
		return &core.HandlerResult{Response: core.NewResponse("ok")}, nil
	})
}

func testCtx() *core.InteractionContext {
	return core.NewTestInteractionContext().AsCommand("move", "roll").InteractionContext
}
