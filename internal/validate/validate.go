// Package validate holds the client-side submission gates. These checks are
// never authoritative; the backend re-validates everything.
package validate

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s has a plausible local@domain.tld shape.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password checks password strength and returns "" when the password is
// acceptable, otherwise a human-readable reason. Rules are checked in order
// and the first failure wins.
func Password(password string) string {
	if password == "" {
		return "Please enter the password"
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters long."
	}
	if !containsClass(password, 'a', 'z') {
		return "Password must contain at least one lowercase letter."
	}
	if !containsClass(password, 'A', 'Z') {
		return "Password must contain at least one uppercase letter."
	}
	if !containsClass(password, '0', '9') {
		return "Password must contain at least one number."
	}
	return ""
}

func containsClass(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
