package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	handlers     []Handler
	middleware   []Middleware
	errorHandler ErrorHandler
	logger       *zap.Logger

	// Whether to stop after the first handler that can handle
	stopOnFirst bool

	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
		logger:       logger,
		stopOnFirst:  true,
	}
}

// Register adds handlers to the pipeline. Middleware registered before
// this call wraps them.
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, &routedHandler{route: h, run: wrapped})
	}
}

// routedHandler asks the registered handler whether it matches and runs the
// middleware-wrapped one. Middleware returns HandlerFuncs, which match
// everything.
type routedHandler struct {
	route Handler
	run   Handler
}

func (r *routedHandler) CanHandle(ctx *InteractionContext) bool {
	return r.route.CanHandle(ctx)
}

func (r *routedHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return r.run.Handle(ctx)
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// SetStopOnFirst configures whether to stop after the first handler that can handle
func (p *Pipeline) SetStopOnFirst(stop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopOnFirst = stop
}

// Execute runs the pipeline for an interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ic := NewInteractionContext(ctx, s, i)
	return p.Dispatch(ic, NewDiscordResponder(s, i))
}

// Dispatch runs the handlers for an already built context and sends the
// result through responder.
func (p *Pipeline) Dispatch(ic *InteractionContext, responder InteractionResponder) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	stopOnFirst := p.stopOnFirst
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	domain, action := ic.Route()
	handled := false

	for _, handler := range handlers {
		if !handler.CanHandle(ic) {
			continue
		}

		result, err := handler.Handle(ic)
		if err != nil {
			result = errorHandler(ic, err)
		}

		if result != nil && result.Response != nil {
			if err := responder.Respond(result.Response); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
			p.afterSend(responder, result, domain, action)
		}

		handled = true
		if stopOnFirst || (result != nil && result.StopPropagation) {
			break
		}
	}

	if !handled && !responder.HasResponded() {
		p.logger.Warn("no handler for interaction",
			zap.String("domain", domain),
			zap.String("action", action),
		)
		return responder.Respond(NewEphemeralResponse("I don't know how to handle that command."))
	}

	return nil
}

func (p *Pipeline) afterSend(responder InteractionResponder, result *HandlerResult, domain, action string) {
	if result.AfterSend == nil || result.Response.Modal != nil {
		return
	}
	msg, err := responder.Original()
	if err != nil {
		p.logger.Warn("failed to fetch sent message",
			zap.String("domain", domain),
			zap.String("action", action),
			zap.Error(err),
		)
		return
	}
	result.AfterSend(msg)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// defaultErrorHandler shows HandlerErrors and hides everything else
func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	handlerErr := FromError(err)
	if handlerErr.ShowToUser {
		return &HandlerResult{
			Response: NewEphemeralResponse(handlerErr.UserMessage),
		}
	}
	return &HandlerResult{
		Response: NewEphemeralResponse("An error occurred while processing your request."),
	}
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
