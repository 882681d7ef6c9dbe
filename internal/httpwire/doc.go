// Package httpwire writes HTTP/1.1 responses directly onto a connection.
//
// Every response is fully buffered before anything is written because the
// Content-Length header needs the body length up front. The exact layout is:
//
//	HTTP/1.1 <status>\r\n
//	Content-Type: <type>; charset=UTF-8\r\n
//	Content-Length: <n>\r\n
//	\r\n
//	<body>
//
// No other headers are emitted and no terminator is appended to the body.
package httpwire
