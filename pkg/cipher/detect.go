package cipher

import (
	"regexp"
	"strings"
)

// Labels returned by Detect. The values are shown directly to the user.
const (
	LabelBase64   = "Base64"
	LabelBinary   = "Binary"
	LabelHex      = "Hex"
	LabelReversed = "Reversed or palindrome"
	LabelPlain    = "Plain text"
	LabelUnknown  = "Unknown"
)

var (
	base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
	binaryPattern = regexp.MustCompile(`^[01]{8}( [01]{8})*$`)
	hexPattern    = regexp.MustCompile(`^[0-9a-f]{1,6}( [0-9a-f]{1,6})*$`)
	letterPattern = regexp.MustCompile(`^[A-Za-z .,!?']+$`)
)

// Detect classifies text as the output of one of the supported transforms
// using pattern checks in a fixed priority order: Base64, then binary, then
// hex, then palindrome, then plain letters, then unknown.
//
// Inputs that satisfy several patterns get the label of whichever check
// runs first; the order is part of the contract because it determines the
// label shown to the user.
func Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return LabelUnknown
	}

	switch {
	case len(text)%4 == 0 && base64Pattern.MatchString(text):
		return LabelBase64
	case binaryPattern.MatchString(text):
		return LabelBinary
	case hexPattern.MatchString(text):
		return LabelHex
	case len(text) > 2 && strings.EqualFold(text, Reverse(text)):
		return LabelReversed
	case letterPattern.MatchString(text):
		return LabelPlain
	default:
		return LabelUnknown
	}
}
