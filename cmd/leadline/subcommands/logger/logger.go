package logger

import (
	"io"
	"log"
	"os"
)

// Null discards everything. For tests.
func Null() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// Default writes to stderr, keeping stdout for results.
func Default() *log.Logger {
	return log.New(os.Stderr, "", log.LstdFlags|log.Lmsgprefix)
}
