// Package convkey derives the canonical identifier shared by both
// participants of a direct conversation.
package convkey

import (
	"strings"

	"github.com/matheus3301/dmsync/internal/apperr"
)

// Separator joins the two participant ids. User ids may not contain it.
const Separator = "|"

// Derive returns the conversation key for the unordered pair (a, b).
// The lexicographically smaller id always comes first, so
// Derive(a, b) == Derive(b, a).
func Derive(a, b string) (string, error) {
	if err := ValidateUserID(a); err != nil {
		return "", err
	}
	if err := ValidateUserID(b); err != nil {
		return "", err
	}
	if a == b {
		return "", apperr.Validation("self-conversation for user %q", a)
	}
	if b < a {
		a, b = b, a
	}
	return a + Separator + b, nil
}

// MustDerive is Derive for ids already validated by the caller. It panics on
// a contract violation.
func MustDerive(a, b string) string {
	key, err := Derive(a, b)
	if err != nil {
		panic(err)
	}
	return key
}

// Parse splits a key into its two participants in canonical order.
func Parse(key string) (string, string, error) {
	a, b, ok := strings.Cut(key, Separator)
	if !ok || a == "" || b == "" || strings.Contains(b, Separator) || a >= b {
		return "", "", apperr.Validation("malformed conversation key %q", key)
	}
	return a, b, nil
}

// Counterpart returns the participant of key that is not userID.
func Counterpart(key, userID string) (string, error) {
	a, b, err := Parse(key)
	if err != nil {
		return "", err
	}
	switch userID {
	case a:
		return b, nil
	case b:
		return a, nil
	}
	return "", apperr.Validation("user %q is not a participant of %q", userID, key)
}

// Has reports whether userID participates in key.
func Has(key, userID string) bool {
	_, err := Counterpart(key, userID)
	return err == nil
}

// ValidateUserID rejects ids that cannot take part in a key.
func ValidateUserID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validation("empty user id")
	}
	if strings.Contains(id, Separator) {
		return apperr.Validation("user id %q contains %q", id, Separator)
	}
	return nil
}
