package core

import (
	"strings"
)

// Router manages handlers for one domain. The domain is both the slash
// command name and the first part of every custom ID it owns.
type Router struct {
	domain          string
	handlers        map[string]Handler
	middleware      []Middleware
	customIDBuilder *CustomIDBuilder
	pipeline        *Pipeline
}

// NewRouter creates a new domain router
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:          domain,
		handlers:        make(map[string]Handler),
		middleware:      make([]Middleware, 0),
		customIDBuilder: NewCustomIDBuilder(domain),
		pipeline:        pipeline,
	}
}

// Use adds middleware to this router. It applies to routes added afterwards.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler for a routing pattern
func (r *Router) Handle(pattern string, handler Handler) *Router {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}
	r.handlers[pattern] = wrapped
	return r
}

// SubcommandFunc registers a handler for /<domain> <sub>
func (r *Router) SubcommandFunc(sub string, fn HandlerFunc) *Router {
	return r.Handle("cmd:"+sub, fn)
}

// ComponentFunc registers a handler for <domain>:<action>:... buttons
func (r *Router) ComponentFunc(action string, fn HandlerFunc) *Router {
	return r.Handle("component:"+action, fn)
}

// ModalFunc registers a handler for <domain>:<action>:... modal submits
func (r *Router) ModalFunc(action string, fn HandlerFunc) *Router {
	return r.Handle("modal:"+action, fn)
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{
		domain:   r.domain,
		handlers: r.handlers,
	}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// GetCustomIDBuilder returns the CustomID builder for this router
func (r *Router) GetCustomIDBuilder() *CustomIDBuilder {
	return r.customIDBuilder
}

type routerHandler struct {
	domain   string
	handlers map[string]Handler
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	return h.lookup(ctx) != nil
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler := h.lookup(ctx)
	if handler == nil {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

// lookup tries the exact pattern first, then wildcards from the most
// specific prefix down ("component:reroll:*", "component:*").
func (h *routerHandler) lookup(ctx *InteractionContext) Handler {
	pattern := h.extractPattern(ctx)
	if pattern == "" {
		return nil
	}
	if handler, ok := h.handlers[pattern]; ok {
		return handler
	}

	parts := strings.Split(pattern, ":")
	for i := len(parts); i > 0; i-- {
		if handler, ok := h.handlers[strings.Join(parts[:i], ":")+":*"]; ok {
			return handler
		}
	}
	return nil
}

func (h *routerHandler) extractPattern(ctx *InteractionContext) string {
	switch {
	case ctx.IsCommand():
		if ctx.GetCommandName() != h.domain {
			return ""
		}
		return "cmd:" + ctx.GetSubcommand()
	case ctx.IsComponent():
		if ctx.CustomID == nil || ctx.CustomID.Domain != h.domain {
			return ""
		}
		return "component:" + ctx.CustomID.Action
	case ctx.IsModal():
		if ctx.CustomID == nil || ctx.CustomID.Domain != h.domain {
			return ""
		}
		return "modal:" + ctx.CustomID.Action
	}
	return ""
}
