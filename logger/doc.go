// Package logger provides structured logging for the gateway using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped named loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.Get("api")
//	log.Info("transcription completed", logger.Fields("duration_ms", 420))
package logger
