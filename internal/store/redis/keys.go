package redis

import "strings"

const (
	// keyPrefix namespaces every folio key in Redis.
	keyPrefix = "folio:"
	// pagePrefix namespaces cached rendered pages.
	pagePrefix = keyPrefix + "page:"
)

// PageKey builds the cache key for a rendered page path.
// Example: "/articles/zero-trust-homelab" -> "folio:page:/articles/zero-trust-homelab"
func PageKey(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return pagePrefix + path
}

// PagePattern matches every cached page key, for invalidation scans.
func PagePattern() string {
	return pagePrefix + "*"
}
