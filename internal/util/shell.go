package util

import (
	"strings"
)

// ShellQuote quotes a string for safe use in /bin/sh scripts by wrapping it
// in single quotes and escaping embedded single quotes
func ShellQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}

// ShellEscape returns s unchanged when it is a plain shell word, and
// single-quoted otherwise
func ShellEscape(s string) string {
	if needsQuoting(s) {
		return ShellQuote(s)
	}
	return s
}

// needsQuoting checks if a string needs shell quoting
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '"' || r == '\'' ||
			r == '$' || r == '\\' || r == '`' || r == '|' || r == '&' ||
			r == ';' || r == '(' || r == ')' || r == '<' || r == '>' ||
			r == '*' || r == '?' || r == '[' || r == '#' || r == '~' {
			return true
		}
	}
	return false
}
