// Package server implements the tinyhttpd accept loop and connection handler.
//
// Each accepted connection is handled by its own goroutine and carries exactly
// one request/response exchange:
//
//  1. Read one request line (up to MaxRequestLine bytes)
//  2. Parse it as "GET <path> ..." (see ParseRequestLine)
//  3. Dispatch /cgi-bin/ paths to the CGI executor, everything else to the
//     static file handler
//  4. Write the response and close the connection
//
// Nothing after the request line is ever read. Malformed request lines get
// "400 Bad Request".
//
// # Wire Format
//
// Static and error responses look like:
//
//	HTTP/1.1 200 OK\r\n
//	Content-Type: text/html; charset=UTF-8\r\n
//	Content-Length: 13\r\n
//	\r\n
//	<h1>hi</h1>\r\n
//
// With the default "raw" CGI framing a successful script's output is written
// as-is, without a status line.
//
// # Usage Example
//
//	cfg := config.Default()
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start blocks until ctx is cancelled or accepting fails
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Connections do not share request state. There are no read or write
// deadlines and no limit on concurrent connections; a slow client or a hanging
// script only holds up its own goroutine. Shutdown closes the listener and all
// open connections and kills running CGI processes.
package server
