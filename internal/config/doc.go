// Package config provides the server configuration for tinyhttpd.
//
// The configuration is a small YAML file. Every field is optional; missing
// fields keep the values from Default(), which match the server's built-in
// behavior (loopback, port 8080, ./www and ./cgi-bin).
//
// # Configuration File Location
//
// When no path is given explicitly, the file is looked up in the platform
// configuration directory:
//   - Linux: $XDG_CONFIG_HOME/tinyhttpd/config.yaml or $HOME/.config/tinyhttpd/config.yaml
//   - macOS: $HOME/.config/tinyhttpd/config.yaml
//   - Windows: %LOCALAPPDATA%\tinyhttpd\config.yaml
//
// A missing file is not an error.
//
// # Example
//
//	version: 1
//	host: 127.0.0.1
//	port: 8080
//	document_root: ./www
//	cgi_root: ./cgi-bin
//	cgi_framing: raw
//	log_level: info
//	advertise:
//	  enabled: false
//	  instance: tinyhttpd
//
// The configuration is built once at startup and passed by pointer to the
// server; nothing in it changes while the server runs.
package config
