package users

import (
	"fmt"
	"net/mail"
	"strings"
)

// NormalizeEmail returns the canonical form of an email address used for
// storage and lookups:
//   - Surrounding whitespace is removed
//   - The address must be a bare addr-spec (no display name or angle brackets)
//   - The domain part is lower-cased; the local part is kept as typed
func NormalizeEmail(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty email")
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", fmt.Errorf("parse email: %w", err)
	}
	if addr.Name != "" || addr.Address != s {
		return "", fmt.Errorf("email %q must not carry a display name", raw)
	}

	at := strings.LastIndexByte(s, '@')
	local, domain := s[:at], s[at+1:]
	if !strings.Contains(domain, ".") {
		return "", fmt.Errorf("email domain %q has no dot", domain)
	}

	return local + "@" + strings.ToLower(domain), nil
}
