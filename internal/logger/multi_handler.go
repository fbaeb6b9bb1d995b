package logger

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler duplicates every record to a set of downstream handlers,
// typically the stdout JSON handler plus a log shipper. Nil handlers are
// dropped at construction so callers can pass optional backends directly.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler combines handlers into a single fan-out handler.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	m := &MultiHandler{}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Enabled reports true when at least one downstream handler wants the level.
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle forwards the record to every handler enabled for its level. Each
// handler gets its own clone; slog.Record is not safe to share once handled.
// Downstream failures are joined so one dead backend cannot hide another.
func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs applies the attributes to every downstream handler.
func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.fanOut(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

// WithGroup applies the group to every downstream handler.
func (m *MultiHandler) WithGroup(name string) slog.Handler {
	return m.fanOut(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m *MultiHandler) fanOut(wrap func(slog.Handler) slog.Handler) *MultiHandler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = wrap(h)
	}
	return &MultiHandler{handlers: next}
}
