// Package core carries process-wide crash handling shared by the loop and the input poller.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	restoreMu sync.Mutex
	restoreFn func()

	// exit is replaced in tests
	exit = osExit
)

var osExit = os.Exit

// SetRestore registers the terminal restore function run before a crash report
// Passing nil clears it
func SetRestore(fn func()) {
	restoreMu.Lock()
	restoreFn = fn
	restoreMu.Unlock()
}

// restore runs and clears the registered function at most once
func restore() {
	restoreMu.Lock()
	fn := restoreFn
	restoreFn = nil
	restoreMu.Unlock()
	if fn != nil {
		fn()
	}
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	restore()

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
