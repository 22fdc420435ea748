// Package naming provides string helpers for schema and operation names.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase converts a string to PascalCase. Separators (underscore,
// hyphen, dot, slash, space) trigger capitalization of the next letter.
// Existing capitalization is preserved.
//
//	"user_data" -> "UserData"
//	"Create user" -> "CreateUser"
//	"alreadyPascal" -> "AlreadyPascal"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	// Use golang.org/x/text/cases for proper Unicode title casing
	titleCaser := cases.Title(language.English, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// SchemaPrefix derives a component schema name prefix from a free-form
// request or folder name. Non-alphanumeric runes act as word separators and
// are dropped; the result is PascalCase. Returns "" when nothing usable
// remains, in which case callers should fall back to a default prefix.
//
//	"Create user (v2)" -> "CreateUserV2"
func SchemaPrefix(name string) string {
	var cleaned strings.Builder
	cleaned.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cleaned.WriteRune(r)
		} else {
			cleaned.WriteRune(' ')
		}
	}
	return ToPascalCase(cleaned.String())
}

// OperationID derives a deterministic operation identifier from an HTTP
// method and a path. Slashes become underscores and leading/trailing
// underscores are stripped.
//
//	("get", "/users/list") -> "get_users_list"
//	("delete", "/") -> "delete"
func OperationID(method, path string) string {
	p := strings.Trim(strings.ReplaceAll(path, "/", "_"), "_")
	if p == "" {
		return method
	}
	return method + "_" + p
}
