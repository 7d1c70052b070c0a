package logging

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type Module string

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	moduleKey    contextKey = "module"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}

	return requestID
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	module, ok := ctx.Value(moduleKey).(Module)
	if !ok {
		return ""
	}

	return module
}

// ValidateAndExtractRequestID keeps a caller supplied id only when it is a
// UUID; anything else is replaced by a fresh UUIDv7.
func ValidateAndExtractRequestID(raw string) string {
	if raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id.String()
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// Handler adds request, module and trace attributes from the context at the
// top level of each record, outside any group opened with WithGroup.
//
// Attributes added before the first group go straight into next, once.
// Groups are kept as frames and folded into the record in Handle, since
// next cannot take root attributes after a group has been opened on it.
type Handler struct {
	next          slog.Handler
	frames        []groupFrame
	defaultModule Module
}

type groupFrame struct {
	name  string
	attrs []slog.Attr
}

func NewHandler(next slog.Handler, defaultModule Module) *Handler {
	return &Handler{next: next, defaultModule: defaultModule}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	attrs := contextAttrs(ctx, h.defaultModule)

	if len(h.frames) == 0 {
		if len(attrs) > 0 {
			r.AddAttrs(attrs...)
		}

		return h.next.Handle(ctx, r)
	}

	var inner []slog.Attr

	r.Attrs(func(a slog.Attr) bool {
		inner = append(inner, a)

		return true
	})

	for i := len(h.frames) - 1; i >= 0; i-- {
		frame := h.frames[i]
		members := make([]any, 0, len(frame.attrs)+len(inner))

		for _, a := range frame.attrs {
			members = append(members, a)
		}

		for _, a := range inner {
			members = append(members, a)
		}

		inner = []slog.Attr{slog.Group(frame.name, members...)}
	}

	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	out.AddAttrs(attrs...)
	out.AddAttrs(inner...)

	return h.next.Handle(ctx, out)
}

func contextAttrs(ctx context.Context, defaultModule Module) []slog.Attr {
	var attrs []slog.Attr

	if requestID := RequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	module := ModuleFromContext(ctx)
	if module == "" {
		module = defaultModule
	}

	if module != "" {
		attrs = append(attrs, slog.String("module", string(module)))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		attrs = append(attrs,
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return attrs
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	if len(h.frames) == 0 {
		return &Handler{next: h.next.WithAttrs(attrs), defaultModule: h.defaultModule}
	}

	frames := slices.Clone(h.frames)
	last := &frames[len(frames)-1]
	last.attrs = append(slices.Clip(last.attrs), attrs...)

	return &Handler{next: h.next, frames: frames, defaultModule: h.defaultModule}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	frames := append(slices.Clip(h.frames), groupFrame{name: name})

	return &Handler{next: h.next, frames: frames, defaultModule: h.defaultModule}
}

// NewLogger returns a JSON logger carrying the service attributes. Debug
// records are only emitted in the dev environment.
func NewLogger(w io.Writer, info ServiceInfo, env Environment, defaultModule Module) *slog.Logger {
	level := slog.LevelInfo
	if env == EnvDev {
		level = slog.LevelDebug
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(NewHandler(base, defaultModule)).With(
		slog.Group("service",
			slog.String("name", info.Name),
			slog.String("version", info.Version),
			slog.String("revision", info.Revision),
		),
		slog.String("env", string(env)),
	)
}
