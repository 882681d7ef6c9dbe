// Package cgi runs scripts under the CGI root and relays their output.
//
// A request for /cgi-bin/<path> is resolved below the CGI root, executed
// directly (no shell, no arguments, no stdin, inherited environment) and its
// standard output is read to completion before the process is waited on.
//
// # Framing
//
// The output can be relayed in two ways:
//   - FramingRaw writes the captured bytes as-is. The script is responsible
//     for any status line and headers; nothing is added by the server.
//   - FramingWrap wraps the captured bytes in a "200 OK" text/html response
//     with a correct Content-Length.
//
// # Failures
//
// A missing script, or one that resolves outside the root, gets a
// "404 Not Found" with body "Script Not Found". Failing to start, read or wait
// for the process, or the process being killed by a signal, gets a
// "500 Internal Server Error" whose body is the failure message. A script that
// exits normally with a non-zero code still has its output delivered.
package cgi
