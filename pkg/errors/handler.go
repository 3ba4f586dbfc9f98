package errors

import (
	"log"
	"sync"
)

// Handler receives framework errors. Implementations must be safe for use
// from the UI thread; they should not block.
type Handler interface {
	HandleError(err *FrameworkError)
	HandleBuildError(err *BuildError)
}

var (
	handlerMu sync.RWMutex
	handler   Handler = LogHandler{}
)

// SetHandler replaces the global error handler. Passing nil restores the
// default log-based handler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		handler = LogHandler{}
		return
	}
	handler = h
}

// Report delivers a framework error to the current handler.
func Report(err *FrameworkError) {
	if err == nil {
		return
	}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	h.HandleError(err)
}

// ReportBuildError delivers a build panic to the current handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	h.HandleBuildError(err)
}

// LogHandler writes errors to the standard logger. It is the default handler
// and a convenient embed for test handlers that only care about one callback.
type LogHandler struct{}

func (LogHandler) HandleError(err *FrameworkError) {
	log.Printf("error: %v", err)
}

func (LogHandler) HandleBuildError(err *BuildError) {
	log.Printf("build error: %v", err)
}
