package core

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperr "github.com/KirkDiggler/naruto2d6-discord/internal/errors"
)

func TestPipeline_Register(t *testing.T) {
	pipeline := NewPipeline(zap.NewNop())

	pipeline.Register(
		HandlerFunc(func(*InteractionContext) (*HandlerResult, error) { return nil, nil }),
		HandlerFunc(func(*InteractionContext) (*HandlerResult, error) { return nil, nil }),
	)

	assert.Equal(t, 2, pipeline.HandlerCount())
}

func TestPipeline_Dispatch_StopOnFirst(t *testing.T) {
	pipeline := NewPipeline(nil)
	called := []string{}

	pipeline.Register(
		HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
			called = append(called, "first")
			return &HandlerResult{Response: NewResponse("one")}, nil
		}),
		HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
			called = append(called, "second")
			return &HandlerResult{Response: NewResponse("two")}, nil
		}),
	)

	responder := NewMockResponder()
	err := pipeline.Dispatch(NewTestInteractionContext().AsCommand("sheet", "show").InteractionContext, responder)

	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, called)
	require.Len(t, responder.Responses, 1)
	assert.Equal(t, "one", responder.Responses[0].Content)
}

func TestPipeline_Dispatch_MiddlewareOrder(t *testing.T) {
	pipeline := NewPipeline(nil)
	order := []string{}

	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
				order = append(order, name)
				return next.Handle(ctx)
			})
		}
	}
	pipeline.Use(mw("outer"), mw("inner"))
	pipeline.Register(HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
		order = append(order, "handler")
		return nil, nil
	}))

	require.NoError(t, pipeline.Dispatch(NewTestInteractionContext().AsCommand("sheet").InteractionContext, NewMockResponder()))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestPipeline_Dispatch_ErrorsBecomeEphemeralReplies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "permission denied keeps its message",
			err:  apperr.Wrap(apperr.PermissionDenied("only an arbiter may reroll freely"), "reroll failed"),
			want: "only an arbiter may reroll freely",
		},
		{
			name: "failed precondition keeps its message",
			err:  apperr.FailedPrecondition("this roll was already rerolled"),
			want: "this roll was already rerolled",
		},
		{
			name: "internal errors are hidden",
			err:  errors.New("redis: connection refused"),
			want: "Something went wrong. Please try again later.",
		},
		{
			name: "handler errors pass through",
			err:  NewValidationError("modifier must be a number"),
			want: "modifier must be a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := NewPipeline(nil)
			pipeline.Register(HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
				return nil, tt.err
			}))

			responder := NewMockResponder()
			require.NoError(t, pipeline.Dispatch(NewTestInteractionContext().AsComponent("move:reroll:rec-1:free").InteractionContext, responder))

			resp := responder.LastResponse()
			require.NotNil(t, resp)
			assert.True(t, resp.Ephemeral)
			assert.Equal(t, tt.want, resp.Content)
		})
	}
}

func TestPipeline_Dispatch_AfterSendReceivesMessage(t *testing.T) {
	pipeline := NewPipeline(nil)
	var got string
	pipeline.Register(HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
		return &HandlerResult{
			Response:  NewResponse("rolled"),
			AfterSend: func(msg *discordgo.Message) { got = msg.ID },
		}, nil
	}))

	responder := NewMockResponder()
	responder.OriginalMessage = &discordgo.Message{ID: "msg-42"}

	require.NoError(t, pipeline.Dispatch(NewTestInteractionContext().AsCommand("move", "roll").InteractionContext, responder))
	assert.Equal(t, "msg-42", got)
}

func TestPipeline_Dispatch_Unhandled(t *testing.T) {
	pipeline := NewPipeline(nil)
	router := NewRouter("sheet", pipeline)
	router.SubcommandFunc("show", func(*InteractionContext) (*HandlerResult, error) {
		return &HandlerResult{Response: NewResponse("sheet")}, nil
	})
	router.Register()

	responder := NewMockResponder()
	require.NoError(t, pipeline.Dispatch(NewTestInteractionContext().AsCommand("move", "roll").InteractionContext, responder))

	resp := responder.LastResponse()
	require.NotNil(t, resp)
	assert.True(t, resp.Ephemeral)
	assert.Contains(t, resp.Content, "don't know")
}

func TestPipeline_MiddlewareKeepsRouting(t *testing.T) {
	pipeline := NewPipeline(nil)
	pipeline.Use(func(next Handler) Handler {
		return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
			return next.Handle(ctx)
		})
	})

	for _, domain := range []string{"sheet", "move"} {
		router := NewRouter(domain, pipeline)
		router.SubcommandFunc("show", func(*InteractionContext) (*HandlerResult, error) {
			return &HandlerResult{Response: NewResponse(domain)}, nil
		})
		router.Register()
	}

	responder := NewMockResponder()
	require.NoError(t, pipeline.Dispatch(NewTestInteractionContext().AsCommand("move", "show").InteractionContext, responder))
	assert.Equal(t, "move", responder.LastResponse().Content)
}

func TestRouter_Routes(t *testing.T) {
	pipeline := NewPipeline(nil)
	router := NewRouter("move", pipeline)
	hit := ""
	mark := func(name string) HandlerFunc {
		return func(*InteractionContext) (*HandlerResult, error) {
			hit = name
			return nil, nil
		}
	}
	router.SubcommandFunc("roll", mark("roll"))
	router.ComponentFunc("reroll", mark("reroll"))
	router.ModalFunc("adjust", mark("adjust-modal"))
	router.Handle("component:*", mark("any-component"))
	router.Register()

	tests := []struct {
		name string
		ctx  *TestInteractionContext
		want string
	}{
		{name: "subcommand", ctx: NewTestInteractionContext().AsCommand("move", "roll"), want: "roll"},
		{name: "component", ctx: NewTestInteractionContext().AsComponent("move:reroll:rec-1:free"), want: "reroll"},
		{name: "component wildcard", ctx: NewTestInteractionContext().AsComponent("move:adjust:rec-1"), want: "any-component"},
		{name: "modal", ctx: NewTestInteractionContext().AsModal("move:adjust:rec-1", map[string]string{"action": "+1"}), want: "adjust-modal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit = ""
			require.NoError(t, pipeline.Dispatch(tt.ctx.InteractionContext, NewMockResponder()))
			assert.Equal(t, tt.want, hit)
		})
	}

	t.Run("other domain is ignored", func(t *testing.T) {
		hit = ""
		require.NoError(t, pipeline.Dispatch(NewTestInteractionContext().AsComponent("sheet:show:c-1").InteractionContext, NewMockResponder()))
		assert.Empty(t, hit)
	})
}

func TestInteractionContext_ModalParams(t *testing.T) {
	ctx := NewTestInteractionContext().AsModal("move:adjust:rec-1", map[string]string{
		"action":      "+2",
		"challenge_a": "-1",
		"challenge_b": "",
	})

	assert.Equal(t, "+2", ctx.GetStringParam("action"))
	assert.Equal(t, "-1", ctx.GetStringParam("challenge_a"))
	assert.True(t, ctx.HasParam("challenge_b"))
	assert.Equal(t, "rec-1", ctx.CustomID.Target)

	domain, action := ctx.Route()
	assert.Equal(t, "move", domain)
	assert.Equal(t, "adjust", action)
}
