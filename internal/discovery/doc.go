// Package discovery advertises a running tinyhttpd instance over mDNS.
//
// The server registers itself as an "_http._tcp" service in the "local."
// domain so that browsers and service browsers on the LAN can find it. TXT
// records carry the static root path, the CGI prefix and the server version:
//
//	path=/
//	cgi=/cgi-bin/
//	version=dev-20261016
//
// Advertisement is optional and off by default. A server bound to a loopback
// address is only reachable locally; advertising it is allowed but logged as
// a warning.
package discovery
