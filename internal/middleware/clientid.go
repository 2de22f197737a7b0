package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

type contextKey string

const (
	ClientIPKey     contextKey = "client_ip"
	ClientIPHashKey contextKey = "client_ip_hash"
	ClientUAHashKey contextKey = "client_ua_hash"
)

// ClientIdentifier extracts the client IP and stashes it plus SHA-256
// digests of the IP and User-Agent into the request context. Review rows
// store the digests, never the raw values.
func ClientIdentifier(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := getClientIP(r)
		ua := r.Header.Get("User-Agent")
		if ua == "" {
			ua = "unknown"
		}

		ctx := context.WithValue(r.Context(), ClientIPKey, ip)
		ctx = context.WithValue(ctx, ClientIPHashKey, hash(ip))
		ctx = context.WithValue(ctx, ClientUAHashKey, hash(ua))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIP returns the IP stored by ClientIdentifier, or "unknown".
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ClientIPKey).(string); ok && ip != "" {
		return ip
	}
	return "unknown"
}

// ClientIPHash returns the hashed IP stored by ClientIdentifier.
func ClientIPHash(ctx context.Context) string {
	if h, ok := ctx.Value(ClientIPHashKey).(string); ok && h != "" {
		return h
	}
	return hash("unknown")
}

// ClientUAHash returns the hashed User-Agent stored by ClientIdentifier.
func ClientUAHash(ctx context.Context) string {
	if h, ok := ctx.Value(ClientUAHashKey).(string); ok && h != "" {
		return h
	}
	return hash("unknown")
}

// getClientIP extracts the real client IP from request headers
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Check CF-Connecting-IP (Cloudflare)
	if cfip := r.Header.Get("CF-Connecting-IP"); cfip != "" {
		return cfip
	}

	// Fall back to RemoteAddr
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
