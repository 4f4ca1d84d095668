// Package logger provides the structured logging used across the
// search-core module, built on Uber's Zap.
//
// The package follows the "accept interfaces, return structs" pattern:
// NewLoggerClient returns the concrete *LoggerClient, while consumers
// depend on the Logger interface (or declare their own local copy of it
// alongside a mockgen directive, so tests can assert on log calls).
//
// Direct usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "search-core",
//	})
//	log.Info("schema inference finished", nil, map[string]interface{}{
//	    "collection": "documents",
//	    "fields":     12,
//	})
//	log.Error("sample fetch failed", err, nil)
//
// For applications using Uber's fx, FXModule provides the client and
// registers a Sync hook on shutdown so buffered entries are not lost.
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
