package engine

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is invoked with the recovered value when a goroutine
// started via Go panics. Replaceable so the entrypoint can restore the
// terminal before the stack trace prints
var crashHandler atomic.Pointer[func(r any)]

func init() {
	h := defaultCrashHandler
	crashHandler.Store(&h)
}

func defaultCrashHandler(r any) {
	fmt.Fprintf(os.Stderr, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// SetCrashHandler replaces the process-wide panic handler used by Go
func SetCrashHandler(fn func(r any)) {
	if fn != nil {
		crashHandler.Store(&fn)
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crash mid-frame still
// cleans up the terminal
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				(*crashHandler.Load())(r)
			}
		}()
		fn()
	}()
}
