package httpwire

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWrite_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, StatusOK, []byte("<h1>hi</h1>"), ContentTypeHTML); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	expected := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"Content-Length: 11\r\n" +
		"\r\n" +
		"<h1>hi</h1>"
	if buf.String() != expected {
		t.Errorf("unexpected response:\n%q\nwant:\n%q", buf.String(), expected)
	}
}

func TestWrite_DefaultContentType(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, StatusNotFound, []byte("Not Found"), ""); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Content-Type: text/plain; charset=UTF-8\r\n") {
		t.Errorf("expected text/plain content type, got %q", buf.String())
	}
}

func TestWrite_ContentLengthCountsBytes(t *testing.T) {
	// 5 runes, 10 bytes
	body := []byte("ééééé")

	var buf bytes.Buffer
	if err := Write(&buf, StatusOK, body, ContentTypeText); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Content-Length: 10\r\n") {
		t.Errorf("expected byte length 10, got %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\r\n\r\nééééé") {
		t.Errorf("body must follow the blank line without a terminator, got %q", buf.String())
	}
}

func TestWrite_EmptyBody(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, StatusInternalServerError, nil, ""); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "Content-Length: 0\r\n\r\n") {
		t.Errorf("unexpected response %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWrite_PropagatesError(t *testing.T) {
	err := Write(failingWriter{}, StatusOK, []byte("x"), "")
	if err == nil {
		t.Fatal("expected error from failing writer")
	}
	if !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestFixedResponses(t *testing.T) {
	tests := []struct {
		name     string
		resp     Response
		wantCode int
		wantBody string
	}{
		{"bad request", BadRequest(), 400, "Bad Request"},
		{"forbidden", Forbidden(), 403, "Forbidden"},
		{"not found", NotFound(), 404, "Not Found"},
		{"script not found", ScriptNotFound(), 404, "Script Not Found"},
		{"internal error", InternalError("exec format error"), 500, "exec format error"},
		{"ok", OK(ContentTypeHTML, []byte("page")), 200, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.StatusCode(); got != tt.wantCode {
				t.Errorf("StatusCode() = %d, want %d", got, tt.wantCode)
			}
			if string(tt.resp.Body) != tt.wantBody {
				t.Errorf("Body = %q, want %q", tt.resp.Body, tt.wantBody)
			}
		})
	}
}

func TestStatusCode_Malformed(t *testing.T) {
	if got := (Response{Status: "OK"}).StatusCode(); got != 0 {
		t.Errorf("StatusCode() = %d, want 0", got)
	}
	if got := (Response{Status: "abc def"}).StatusCode(); got != 0 {
		t.Errorf("StatusCode() = %d, want 0", got)
	}
}
