package errors

import (
	"strings"
	"unicode"
)

// ValidateKey validates an XOR cipher key.
//
// The validation rules are intentionally minimal: the cipher itself places
// no entropy or character-set constraint on the key, so only emptiness and
// an upper length bound are rejected.
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "key cannot be empty")
	}
	if len(key) > 256 {
		return New(ErrCodeInvalidKey, "key too long (max 256 characters)")
	}
	return nil
}

// ValidateShift validates a Caesar shift amount.
// Shifts 0 and 26 are valid identity transforms and must not be rejected.
func ValidateShift(shift int) error {
	if shift < 0 || shift > 26 {
		return New(ErrCodeInvalidShift, "shift must be in [0,26], got %d", shift)
	}
	return nil
}

// ValidateUsername validates a chat participant name for safety.
// It rejects names that could break record keys or terminal rendering.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No whitespace or record-key separators
//   - Maximum length of 64 characters
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "username cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "username too long (max 64 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "username contains invalid control characters")
		}
	}

	// Characters that would corrupt storage keys or key namespaces
	if strings.ContainsAny(name, " \t:/\\\x00") {
		return New(ErrCodeInvalidInput, "username contains invalid characters")
	}

	return nil
}
