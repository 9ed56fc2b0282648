package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the originating address of r.
//
// The first entry of X-Forwarded-For wins when present; otherwise the host
// part of RemoteAddr is used.
func ClientIP(r *http.Request) string {
	if xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
