package main

import (
	"io"
	"log"
	"os"
)

// SessionLog is the append-only session.log writer. The TUI owns stdout, so
// everything diagnostic goes here instead.
type SessionLog struct {
	logger *log.Logger
	file   *os.File
}

// openSessionLog opens (or creates) the log file for appending. When the
// file cannot be opened logging degrades to a no-op rather than failing the
// app.
func openSessionLog(path string) *SessionLog {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &SessionLog{logger: log.New(io.Discard, "", 0)}
	}
	return &SessionLog{
		logger: log.New(file, "", log.LstdFlags),
		file:   file,
	}
}

func (l *SessionLog) Printf(format string, args ...interface{}) {
	l.logger.Printf(format, args...)
}

func (l *SessionLog) Close() {
	if l.file != nil {
		l.file.Close()
	}
}
