package ui

import (
	"strings"
	"testing"
)

func TestBanner_Render(t *testing.T) {
	b := NewBanner("tinyhttpd", "http://127.0.0.1:8080",
		Param{Key: "Document root", Value: "/srv/www"},
		Param{Key: "CGI root", Value: "/srv/cgi-bin"},
	).SetWidth(80)

	out := b.Render()

	for _, want := range []string{"TINYHTTPD", "http://127.0.0.1:8080", "Document root:", "/srv/www", "CGI root:", "/srv/cgi-bin"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered banner missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╯") {
		t.Errorf("expected rounded border:\n%s", out)
	}
}

func TestBanner_RenderNoParams(t *testing.T) {
	out := NewBanner("tinyhttpd", "http://[::1]:9000").SetWidth(10).Render()
	if !strings.Contains(out, "http://[::1]:9000") {
		t.Errorf("rendered banner missing URL:\n%s", out)
	}
	// top border, title, URL, bottom border
	if lines := strings.Count(out, "\n") + 1; lines != 4 {
		t.Errorf("expected 4 lines without params, got %d:\n%s", lines, out)
	}
}

func TestBanner_Plain(t *testing.T) {
	b := NewBanner("tinyhttpd", "http://127.0.0.1:8080")
	if got := b.Plain(); got != "Server is running on http://127.0.0.1:8080" {
		t.Errorf("Plain() = %q", got)
	}
}

func TestGetTerminalWidth_Bounds(t *testing.T) {
	w := GetTerminalWidth()
	if w < MinTerminalWidth || w > MaxContentWidth {
		t.Errorf("GetTerminalWidth() = %d, want within [%d, %d]", w, MinTerminalWidth, MaxContentWidth)
	}
}
