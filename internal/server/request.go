package server

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/muurk/tinyhttpd/internal/logging"
	"github.com/muurk/tinyhttpd/internal/sandbox"
)

// MaxRequestLine is the longest request line accepted, terminator included
const MaxRequestLine = 8192

// Handler names used in logs
const (
	HandlerStatic = "static"
	HandlerCGI    = "cgi"
)

// Request is the part of the request line the server acts on
type Request struct {
	Method string
	Path   string
}

// Handler returns which handler serves the request
func (r Request) Handler() string {
	if sandbox.IsCGI(r.Path) {
		return HandlerCGI
	}
	return HandlerStatic
}

// ReadRequestLine reads a single line from r, without its "\n" or "\r\n"
// terminator. A final line cut short by EOF is returned as-is.
func ReadRequestLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadSlice('\n')
	if err != nil {
		if errors.Is(err, bufio.ErrBufferFull) {
			return "", &MalformedRequestError{
				Line:   string(line[:64]),
				Reason: "request line too long",
				Err:    err,
			}
		}
		if !errors.Is(err, io.EOF) {
			return "", &MalformedRequestError{Line: string(line), Reason: "read failed", Err: err}
		}
	}

	logging.LogRawBytes("Request line", line)

	s := strings.TrimSuffix(string(line), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// ParseRequestLine extracts the method and path from a request line.
// The line is split on single spaces; anything after the path is ignored.
func ParseRequestLine(line string) (Request, error) {
	if strings.TrimSpace(line) == "" {
		return Request{}, &MalformedRequestError{Line: line, Reason: "empty request line"}
	}

	parts := strings.Split(line, " ")
	if parts[0] != "GET" {
		return Request{}, &MalformedRequestError{Line: line, Reason: "unsupported method"}
	}
	if len(parts) < 2 {
		return Request{}, &MalformedRequestError{Line: line, Reason: "missing path"}
	}

	return Request{Method: parts[0], Path: parts[1]}, nil
}
