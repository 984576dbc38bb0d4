package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are checked in priority order: CDN headers first since they
// are set by infrastructure we trust more than arbitrary proxies.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP address from the request.
// It checks trusted proxy headers in priority order and falls back to
// RemoteAddr. The returned value is a normalized IP string; if no valid
// IP can be determined the raw RemoteAddr is returned as-is.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may carry a chain "client, proxy1, proxy2";
		// the leftmost entry is the originating client.
		if header == "X-Forwarded-For" {
			if idx := strings.IndexByte(value, ','); idx >= 0 {
				value = value[:idx]
			}
		}

		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port (some test servers and unix sockets).
		if ip := normalize(r.RemoteAddr); ip != "" {
			return ip
		}
		return r.RemoteAddr
	}

	if ip := normalize(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// normalize validates and canonicalizes the candidate IP string.
// Returns "" for invalid addresses and the unspecified address 0.0.0.0,
// which some proxies emit when no client IP is known.
func normalize(value string) string {
	ip := net.ParseIP(strings.TrimSpace(value))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
