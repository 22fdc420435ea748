// Package pathutil provides URL and path helpers shared by the capture
// extractors and the dialect converter.
package pathutil

import (
	"regexp"
	"strings"
)

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// FromURL derives an operation path from a captured request URL by stripping
// the scheme and host and truncating at the query string. Paths that do not
// start with "/" are prefixed with one. The remainder is kept literal: no
// template-variable detection is attempted, so "/users/123" stays
// "/users/123".
//
//	"https://api.example.com/users/1?full=true" -> "/users/1"
//	"https://api.example.com" -> "/"
//	"/users?full=true" -> "/users"
func FromURL(rawURL string) string {
	rest := rawURL
	// "//" marks the authority only at the start ("//host/...") or right
	// after a scheme ("https://host/..."). A "//" elsewhere is an empty
	// path segment and must stay literal.
	if idx := strings.Index(rest, "//"); idx == 0 || (idx > 0 && rest[idx-1] == ':') {
		rest = rest[idx+2:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			rest = rest[slash:]
		} else {
			rest = "/"
		}
	}
	if idx := strings.Index(rest, "?"); idx >= 0 {
		rest = rest[:idx]
	}
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return rest
}

// StripBase removes a configured base path prefix from an extracted path.
// The result always keeps its leading slash. Paths that do not carry the
// prefix are returned unchanged.
//
//	StripBase("/v1/users", "/v1") -> "/users"
//	StripBase("/v1", "/v1") -> "/"
func StripBase(path, base string) string {
	if base == "" || base == "/" {
		return path
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if path == base {
		return "/"
	}
	if strings.HasPrefix(path, base+"/") {
		return path[len(base):]
	}
	return path
}
