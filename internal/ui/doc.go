// Package ui renders the startup banner printed by tinyhttpd serve.
//
// The banner is a rounded lipgloss box with the server URL and its
// configuration, sized to the terminal:
//
//	╭──────────────────────────────────────────╮
//	│  TINYHTTPD                               │
//	│  http://127.0.0.1:8080                   │
//	│  ──────────────────────────────────────  │
//	│  Document root: /srv/www                 │
//	│  CGI root:      /srv/cgi-bin             │
//	╰──────────────────────────────────────────╯
//
// When stdout is not a terminal a single plain line is printed instead.
package ui
