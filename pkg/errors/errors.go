// Package errors provides structured error reporting for the framework.
package errors

import (
	"fmt"
	"runtime"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error.
	KindInit
	// KindRender indicates a rendering error.
	KindRender
	// KindBuild indicates a build-time widget error.
	KindBuild
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindBuild:
		return "build"
	default:
		return "unknown"
	}
}

// FrameworkError represents a structured error in the framework.
type FrameworkError struct {
	// Op is the operation that failed (e.g., "graphics.DefaultFontManager").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FrameworkError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FrameworkError) Unwrap() error {
	return e.Err
}

// New builds a FrameworkError with the current timestamp.
func New(op string, kind ErrorKind, err error) *FrameworkError {
	return &FrameworkError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// BuildError represents a recovered panic during a widget build.
type BuildError struct {
	// Widget is the type name of the widget whose build panicked.
	Widget string
	// Element is the type name of the hosting element.
	Element string
	// Recovered is the value passed to panic().
	Recovered any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build of %s panicked: %v", e.Widget, e.Recovered)
}

// CaptureStack returns the current goroutine's stack trace.
func CaptureStack() string {
	buf := make([]byte, 16*1024)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
