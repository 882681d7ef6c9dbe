package httpwire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Status lines used by the server
const (
	StatusOK                  = "200 OK"
	StatusBadRequest          = "400 Bad Request"
	StatusForbidden           = "403 Forbidden"
	StatusNotFound            = "404 Not Found"
	StatusInternalServerError = "500 Internal Server Error"
)

// Content types. The charset parameter is appended by Write.
const (
	ContentTypeText = "text/plain"
	ContentTypeHTML = "text/html"
)

// Response is a fully buffered HTTP response
type Response struct {
	Status      string
	ContentType string
	Body        []byte
}

// StatusCode returns the numeric code from the status line, or 0 if it has none
func (r Response) StatusCode() int {
	if len(r.Status) < 3 {
		return 0
	}
	code, err := strconv.Atoi(r.Status[:3])
	if err != nil {
		return 0
	}
	return code
}

// WriteTo writes the response to w in a single Write call
func (r Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}

// Bytes returns the serialized response
func (r Response) Bytes() []byte {
	contentType := r.ContentType
	if contentType == "" {
		contentType = ContentTypeText
	}

	var buf bytes.Buffer
	buf.Grow(len(r.Body) + 96)
	fmt.Fprintf(&buf, "HTTP/1.1 %s\r\n", r.Status)
	fmt.Fprintf(&buf, "Content-Type: %s; charset=UTF-8\r\n", contentType)
	fmt.Fprintf(&buf, "Content-Length: %d\r\n", len(r.Body))
	buf.WriteString("\r\n")
	buf.Write(r.Body)
	return buf.Bytes()
}

// Write emits a complete response. An empty contentType means text/plain.
func Write(w io.Writer, status string, body []byte, contentType string) error {
	resp := Response{Status: status, ContentType: contentType, Body: body}
	if _, err := resp.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %q response: %w", status, err)
	}
	return nil
}

// OK builds a 200 response
func OK(contentType string, body []byte) Response {
	return Response{Status: StatusOK, ContentType: contentType, Body: body}
}

// BadRequest builds the response for a malformed request line
func BadRequest() Response {
	return text(StatusBadRequest, "Bad Request")
}

// Forbidden builds the response for a static path outside the document root
func Forbidden() Response {
	return text(StatusForbidden, "Forbidden")
}

// NotFound builds the response for a missing static file
func NotFound() Response {
	return text(StatusNotFound, "Not Found")
}

// ScriptNotFound builds the response for a missing or out-of-root CGI script
func ScriptNotFound() Response {
	return text(StatusNotFound, "Script Not Found")
}

// InternalError builds a 500 response carrying msg as its body
func InternalError(msg string) Response {
	return text(StatusInternalServerError, msg)
}

func text(status, body string) Response {
	return Response{Status: status, ContentType: ContentTypeText, Body: []byte(body)}
}
