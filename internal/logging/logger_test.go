package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected silent logger when no level is configured")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	defer SetLogger(nil)

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("expected info to be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("expected warn to be enabled at warn level")
	}
}

func TestGetLogger_NilFallback(t *testing.T) {
	SetLogger(nil)
	if GetLogger() == nil {
		t.Fatal("expected non-nil fallback logger")
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogConnection("127.0.0.1:5000", "connection_accepted")
	LogRequest("127.0.0.1:5000", "GET", "/", "static")
	LogResponse("127.0.0.1:5000", "200 OK", 12)
	LogRawBytes("Request line", []byte("GET /\x00"))

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	if got := entries[0].ContextMap()["event"]; got != "connection_accepted" {
		t.Errorf("event = %v", got)
	}
	if got := entries[1].ContextMap()["handler"]; got != "static" {
		t.Errorf("handler = %v", got)
	}
	if got := entries[2].ContextMap()["content_length"]; got != int64(12) {
		t.Errorf("content_length = %v (%T)", got, got)
	}
	if got := entries[3].ContextMap()["ascii"]; got != "GET /." {
		t.Errorf("ascii = %v", got)
	}
}

func TestHexDump_Truncates(t *testing.T) {
	data := []byte(strings.Repeat("a", 300))
	dump := hexDump(data)
	if !strings.HasSuffix(dump, "...") {
		t.Errorf("expected truncated dump, got suffix %q", dump[len(dump)-5:])
	}
	if len(dump) != 512+3 {
		t.Errorf("len(dump) = %d, want %d", len(dump), 515)
	}
	if hexDump(nil) != "" {
		t.Error("expected empty dump for nil input")
	}
	if len(asciiDump(data)) != 256 {
		t.Errorf("expected ascii dump capped at 256 bytes")
	}
}
