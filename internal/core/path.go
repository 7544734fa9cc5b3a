package core

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var ErrInvalidRoute = errors.New("invalid route path")

// NormalizePath returns the canonical form of a route: rooted, cleaned of
// duplicate slashes and without a trailing slash.
func NormalizePath(p string) string {
	return path.Clean("/" + strings.TrimLeft(p, "/"))
}

var routeRules = []struct {
	bad    func(string) bool
	reason string
}{
	{func(p string) bool { return p == "" }, "cannot be empty"},
	{func(p string) bool { return !strings.HasPrefix(p, "/") }, "must start with /"},
	{func(p string) bool { return strings.Contains(p, "?") }, "cannot contain query string"},
	{func(p string) bool { return strings.Contains(p, "#") }, "cannot contain fragment"},
	{func(p string) bool { return strings.Contains(p, "..") }, "cannot contain parent directory references"},
	{func(p string) bool { return strings.ContainsAny(p, "*{}") }, "cannot contain wildcards"},
	{func(p string) bool { return strings.ContainsAny(p, " \t\r\n") }, "cannot contain whitespace"},
}

// ValidateRoutePath accepts literal, absolute page paths; both routers and
// the static export need them without patterns.
func ValidateRoutePath(p string) error {
	for _, rule := range routeRules {
		if rule.bad(p) {
			return fmt.Errorf("%w %q: %s", ErrInvalidRoute, p, rule.reason)
		}
	}
	return nil
}

// SameRoute reports whether a and b serve the same path once normalized.
func SameRoute(a, b string) bool {
	return NormalizePath(a) == NormalizePath(b)
}

// ExportPathForRoute maps a route to the file that serves it from a static
// host: "/" becomes "index.html", "/a/b" becomes "a/b/index.html".
func ExportPathForRoute(route string) string {
	route = NormalizePath(route)
	if route == "/" {
		return "index.html"
	}
	return path.Join(strings.TrimPrefix(route, "/"), "index.html")
}
