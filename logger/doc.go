// Package logger provides structured logging for the authentication service
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("auth")
//	log.Info("user registered", logger.Fields("user_id", id))
package logger
