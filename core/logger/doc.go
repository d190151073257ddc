// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the cobra command tree.
//
// # Command Awareness
//
// The WithCommand helper attaches the full command path (e.g. "common-utils files copy")
// to the log entry, so every line emitted while a command runs can be attributed to it.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// Logs are written to stderr so command results on stdout stay clean.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Copy started")
//
//	// In a command:
//	l := logger.WithCommand(log, cmd)
//	l.Error("Command failed", zap.Error(err))
package logger
