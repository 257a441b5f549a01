package winstatus

import (
	"errors"
	"log/slog"
)

// StatusError is the error produced when a checked handler or a Unique
// wrapper surfaces a failing status. It carries the status value itself
// plus a record of whether that value counted as success at the moment
// the error was built.
type StatusError[T Status] struct {
	status T
	ok     bool
}

// NewStatusError captures v and its success predicate. The predicate is
// evaluated once, here; it never gates whether the error is raised.
func NewStatusError[T Status](v T) *StatusError[T] {
	return &StatusError[T]{status: v, ok: v.Ok()}
}

// Status returns the carried status value.
func (e *StatusError[T]) Status() T { return e.status }

// Ok reports whether the carried value was a success code when the
// error was built. A true result marks a vacuous failure: a sentinel
// matched but the fetched status did not actually record an error.
func (e *StatusError[T]) Ok() bool { return e.ok }

func (e *StatusError[T]) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.status.String()
}

// LogValue implements slog.LogValuer so the status logs as a structured
// group instead of a bare string.
func (e *StatusError[T]) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		slog.String("status", e.status.String()),
		slog.String("code", hex32(uint32(e.status))),
		slog.Bool("ok", e.ok),
	)
}

// IsStatus reports whether err carries the exact status v, at any depth
// of wrapping.
func IsStatus[T Status](err error, v T) bool {
	var e *StatusError[T]
	if errors.As(err, &e) {
		return e.status == v
	}
	return false
}

// StatusOf extracts the status value carried by err, if any.
func StatusOf[T Status](err error) (T, bool) {
	var e *StatusError[T]
	if errors.As(err, &e) {
		return e.status, true
	}
	var zero T
	return zero, false
}
