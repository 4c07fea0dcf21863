package httpx

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the caller's address for audit purposes. Proxy headers are
// trusted as-is: X-Forwarded-For (first entry), then X-Real-IP, then the
// connection's remote address. Empty and "unknown" header values are skipped.
func ClientIP(r *http.Request) string {
	for _, header := range []string{"X-Forwarded-For", "X-Real-IP"} {
		if ip := firstAddr(r.Header.Get(header)); ip != "" {
			return ip
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func firstAddr(v string) string {
	first, _, _ := strings.Cut(v, ",")
	first = strings.TrimSpace(first)
	if strings.EqualFold(first, "unknown") {
		return ""
	}
	return first
}
