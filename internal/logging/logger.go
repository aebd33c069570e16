// Package logging configures the process-wide zap logger. Events are teed
// to stdout and an append-only log file next to the binary; the file is
// observability only and not part of the functional contract.
package logging

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogFile is the log file created in the working directory
const DefaultLogFile = "tubesaver.log"

// New builds a logger writing to stdout and the given file. A file open
// failure degrades to stdout-only logging rather than failing startup.
func New(logFile string) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), os.Stdout, zap.InfoLevel),
	}

	fileSync, _, err := zap.Open(logFile)
	if err != nil {
		log.Println("Cannot open log file for zap:", err)
	} else {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), fileSync, zap.InfoLevel))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// NewNop returns a no-op logger for tests and optional wiring
func NewNop() *zap.Logger {
	return zap.NewNop()
}
