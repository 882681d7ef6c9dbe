// Package logging provides structured logging for the tinyhttpd server.
//
// This package wraps a global zap logger with convenience functions for the
// events the server cares about: accepted and closed connections, request
// lines, responses and CGI process lifecycles.
//
// # Log Levels
//
//   - Debug: raw request bytes, resolved paths, CGI process start
//   - Info: connections, requests, responses, CGI completion
//   - Warn: rejected paths, malformed requests, non-zero CGI exits
//   - Error: accept failures, CGI execution failures, write errors
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When no level is given, TINYHTTPD_LOG_LEVEL is consulted. When neither is
// set the logger is silent.
//
// # Output Format
//
// Logs are written to stdout in console format. Level names are colored only
// when stdout is a terminal.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
