package utils

import (
	"html"
	"strings"
	"unicode"
)

// SanitizeString trims whitespace and escapes HTML entities.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// SanitizePhone keeps only characters that can appear in a phone number.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var result strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) || r == '+' || r == '-' || r == ' ' || r == '(' || r == ')' {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// SanitizeText sanitizes multi-line text input, preserving newlines and tabs.
func SanitizeText(input string) string {
	escaped := html.EscapeString(strings.TrimSpace(input))

	var result strings.Builder
	for _, r := range escaped {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
