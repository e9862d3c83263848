package utils

import (
	"log"
	"os"
)

// InitLogger returns the process logger. Output defaults to stdout.
func InitLogger(output ...*os.File) *log.Logger {
	out := os.Stdout
	if len(output) > 0 && output[0] != nil {
		out = output[0]
	}
	return log.New(out, "[Socratia] ", log.LstdFlags|log.LUTC)
}
