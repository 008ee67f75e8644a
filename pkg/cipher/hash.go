package cipher

import (
	"fmt"
	"unicode"
)

// Fingerprint returns a deterministic non-cryptographic fingerprint of text,
// rendered as eight lowercase hex digits. It uses a rolling multiply-add
// accumulator (h = h*31 + code) truncated to 32 bits.
//
// This is a display hash for the UI, nothing more. It is not a message
// digest and must never be used for integrity or authentication.
func Fingerprint(text string) string {
	var h uint32
	for _, r := range text {
		h = h*31 + uint32(r)
	}
	return fmt.Sprintf("%08x", h)
}

// Strength labels returned by Strength, ordered weakest to strongest.
const (
	StrengthVeryWeak   = "very weak"
	StrengthWeak       = "weak"
	StrengthFair       = "fair"
	StrengthStrong     = "strong"
	StrengthVeryStrong = "very strong"
)

// Strength scores a password heuristically in [0,100] from its length and
// character-class diversity, and buckets the score into a label at fixed
// 20/40/60/80 thresholds. The score is purely advisory: a high score
// implies no security guarantee whatsoever.
func Strength(text string) (int, string) {
	if text == "" {
		return 0, StrengthVeryWeak
	}

	// Up to 40 points for length, 15 per character class present.
	score := min(len([]rune(text)), 20) * 2

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			score += 15
		}
	}
	score = min(score, 100)

	switch {
	case score < 20:
		return score, StrengthVeryWeak
	case score < 40:
		return score, StrengthWeak
	case score < 60:
		return score, StrengthFair
	case score < 80:
		return score, StrengthStrong
	default:
		return score, StrengthVeryStrong
	}
}
