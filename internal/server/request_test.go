package server

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantPath   string
		wantReason string
	}{
		{name: "full request line", line: "GET /index.html HTTP/1.1", wantPath: "/index.html"},
		{name: "no version", line: "GET /", wantPath: "/"},
		{name: "extra tokens ignored", line: "GET /a b c d", wantPath: "/a"},
		{name: "query kept verbatim", line: "GET /page?x=1 HTTP/1.1", wantPath: "/page?x=1"},
		{name: "cgi path", line: "GET /cgi-bin/hello.sh HTTP/1.0", wantPath: "/cgi-bin/hello.sh"},
		{name: "double space gives empty path", line: "GET  /x", wantPath: ""},
		{name: "empty", line: "", wantReason: "empty request line"},
		{name: "whitespace only", line: " \t ", wantReason: "empty request line"},
		{name: "post", line: "POST / HTTP/1.1", wantReason: "unsupported method"},
		{name: "lowercase get", line: "get / HTTP/1.1", wantReason: "unsupported method"},
		{name: "method prefix", line: "GETX / HTTP/1.1", wantReason: "unsupported method"},
		{name: "leading space", line: " GET /", wantReason: "unsupported method"},
		{name: "single token", line: "GET", wantReason: "missing path"},
		{name: "tab separated", line: "GET\t/", wantReason: "unsupported method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequestLine(tt.line)
			if tt.wantReason != "" {
				var mErr *MalformedRequestError
				if !errors.As(err, &mErr) {
					t.Fatalf("expected *MalformedRequestError, got %v", err)
				}
				if mErr.Reason != tt.wantReason {
					t.Errorf("Reason = %q, want %q", mErr.Reason, tt.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRequestLine(%q) error = %v", tt.line, err)
			}
			if req.Method != "GET" {
				t.Errorf("Method = %q, want GET", req.Method)
			}
			if req.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", req.Path, tt.wantPath)
			}
		})
	}
}

func TestRequest_Handler(t *testing.T) {
	if got := (Request{Path: "/cgi-bin/x"}).Handler(); got != HandlerCGI {
		t.Errorf("Handler() = %q, want %q", got, HandlerCGI)
	}
	if got := (Request{Path: "/cgi-bin"}).Handler(); got != HandlerStatic {
		t.Errorf("Handler() = %q, want %q", got, HandlerStatic)
	}
	if got := (Request{Path: "/"}).Handler(); got != HandlerStatic {
		t.Errorf("Handler() = %q, want %q", got, HandlerStatic)
	}
}

func TestReadRequestLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "GET / HTTP/1.1\r\nHost: x\r\n\r\n", "GET / HTTP/1.1"},
		{"lf", "GET /\nrest", "GET /"},
		{"eof without newline", "GET /partial", "GET /partial"},
		{"empty stream", "", ""},
		{"blank line", "\r\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReaderSize(strings.NewReader(tt.input), MaxRequestLine)
			got, err := ReadRequestLine(r)
			if err != nil {
				t.Fatalf("ReadRequestLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadRequestLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadRequestLine_TooLong(t *testing.T) {
	input := "GET /" + strings.Repeat("a", MaxRequestLine) + " HTTP/1.1\r\n"
	r := bufio.NewReaderSize(strings.NewReader(input), MaxRequestLine)

	_, err := ReadRequestLine(r)
	var mErr *MalformedRequestError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected *MalformedRequestError, got %v", err)
	}
	if !errors.Is(err, bufio.ErrBufferFull) {
		t.Errorf("expected wrapped bufio.ErrBufferFull, got %v", err)
	}
}

type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestReadRequestLine_ReadError(t *testing.T) {
	_, err := ReadRequestLine(bufio.NewReader(errReader{}))
	var mErr *MalformedRequestError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected *MalformedRequestError, got %v", err)
	}
	if mErr.Reason != "read failed" {
		t.Errorf("Reason = %q", mErr.Reason)
	}
	if !strings.Contains(err.Error(), "connection reset by peer") {
		t.Errorf("Error() = %q, expected cause", err.Error())
	}
}
