package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "orrery.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate when the current log exceeds 10 MB
)

// setupLogging routes the standard logger to logs/orrery.log when debug is set and discards it otherwise
// Returns the open log file for the caller to close, nil when logging is disabled or unavailable
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("orrery-%s.log", time.Now().Format("20060102-150405")))
		// A failed rename keeps appending to the oversized file
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("Logging started (pid %d)", os.Getpid())
	return f
}
