package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler and returns the one it
// replaced. A nil h restores a quiet [LogHandler].
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

func current() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report hands err to the installed handler, stamping it first if needed.
func Report(err *WaveError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	current().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	current().HandlePanic(err)
}

// Recover reports a panic in progress and lets the caller return normally.
// It must be deferred directly:
//
//	defer errors.Recover("animation.LoopScheduler")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the goroutine's stack, starting at the caller of the
// function that called CaptureStack.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for n > 0 {
		frame, more := frames.Next()
		sb.WriteString(frame.Function + "\n\t" + frame.File + ":" + strconv.Itoa(frame.Line) + "\n")
		if !more {
			break
		}
	}
	return sb.String()
}
