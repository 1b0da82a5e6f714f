// Package logging provides structured logging for oaslint using slog.
//
// Loggers are plain [log/slog] loggers. Text output goes through [Handler],
// which colorizes levels and keys when the destination is a terminal. JSON
// output uses the standard library handler. [TeeHandler] fans records out to
// several handlers, which is how --log-file mirrors console output.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(1),
//		Format: logging.FormatText,
//	})
//	logger.Info("validating", "document", "petstore.yaml")
//
// Commands receive the logger through their context:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("rule registered", "rule", desc)
//
// # Testing
//
// [ForTest] routes log output through t.Log so it only shows on failure or -v.
package logging
