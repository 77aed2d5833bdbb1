package controllers

import (
	"net"
	"net/http"
	"strings"
)

// ownerScope identifies the record owner for a request. Records are scoped
// by client address, so every visitor sees only their own entries.
//
// Proxy headers are only honoured when trustProxy is set, otherwise any
// client could impersonate another owner by forging X-Forwarded-For.
func ownerScope(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first := strings.TrimSpace(strings.Split(xff, ",")[0])
			if first != "" {
				return first
			}
		}
		if rip := strings.TrimSpace(r.Header.Get("X-Real-IP")); rip != "" {
			return rip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}
