// Package errors provides structured error reporting for dashed widgets.
//
// Nothing on the animation or paint path returns errors; problems that
// should not stop the widget (an unreadable color, a lifecycle event with
// an unexpected payload, a panicking tick) are reported to a process-wide
// [Handler] instead.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an attribute file that could not be loaded.
	KindConfig
	// KindParsing indicates an attribute or event value that could not be parsed.
	KindParsing
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindLifecycle indicates a lifecycle source problem.
	KindLifecycle
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindLifecycle:
		return "lifecycle"
	default:
		return "unknown"
	}
}

// Error is a structured error with the operation that produced it.
type Error struct {
	// Op is the operation that failed (e.g., "border.LoadAttributes").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Source names the file or event stream involved, if any.
	Source string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] source=%s: %v", e.Op, e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.Looper.RunPending").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a value that could not be interpreted.
type ParseError struct {
	// Source is the file or channel the value came from.
	Source string
	// Attribute is the attribute or field name.
	Attribute string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("failed to parse %s from %s: got %v (%T)", e.Attribute, e.Source, e.Got, e.Got)
	}
	return fmt.Sprintf("failed to parse %s: got %v (%T)", e.Attribute, e.Got, e.Got)
}
