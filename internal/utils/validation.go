package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/yukikurage/project-management-api/internal/constants"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword reports whether password is at least MinPasswordLength
// characters and mixes upper case, lower case, digits and a special character.
// Line terminators are never allowed.
func IsStrongPassword(password string) bool {
	if len([]rune(password)) < constants.MinPasswordLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case isLineTerminator(r):
			return false
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r) && r <= unicode.MaxASCII:
			digit = true
		case strings.ContainsRune(constants.PasswordSpecialChars, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}
