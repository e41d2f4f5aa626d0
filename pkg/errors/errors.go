// Package errors provides structured error reporting for wavetext.
//
// Library code never panics on bad input and never logs directly; it
// returns a [*WaveError] or hands one to [Report], which forwards it to the
// installed [ErrorHandler].
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
	// KindConfig indicates invalid configuration or wave parameters.
	KindConfig
	// KindRange indicates a span bound outside its text.
	KindRange
	// KindInit indicates an initialization error, such as a bad font.
	KindInit
	// KindRender indicates a layout or drawing error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRange:
		return "range"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WaveError represents a structured error raised by wavetext.
type WaveError struct {
	// Op is the operation that failed (e.g., "graphics.SetSpan").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WaveError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WaveError) Unwrap() error {
	return e.Err
}

// New returns a WaveError for op wrapping a formatted message.
func New(op string, kind ErrorKind, format string, args ...any) *WaveError {
	return &WaveError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.LoopScheduler").
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

// RangeError describes a span bound that does not fit its text.
type RangeError struct {
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("span [%d, %d) out of range for length %d", e.Start, e.End, e.Len)
}

// ErrorHandler receives errors reported by wavetext.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WaveError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
