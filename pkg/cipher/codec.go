package cipher

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/cipherchat/cipherchat/pkg/errors"
)

// Base64Encode encodes text as standard base64. Multi-byte code points are
// handled by encoding the UTF-8 bytes directly, so any string round-trips.
func Base64Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Base64Decode reverses Base64Encode. Malformed input returns a
// MALFORMED_INPUT error.
func Base64Decode(text string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMalformedInput, err, "input is not valid base64")
	}
	return string(raw), nil
}

// HexEncode maps each character of text to its code point as two lowercase
// hex digits, space-joined. Code points above 255 take more than two digits
// and still decode correctly.
func HexEncode(text string) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", r)
	}
	return b.String()
}

// HexDecode reverses HexEncode. It splits on single spaces and parses each
// group as a hex code point; empty groups, non-hex characters, and
// out-of-range code points return a MALFORMED_INPUT error.
func HexDecode(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	groups := strings.Split(text, " ")
	out := make([]rune, len(groups))
	for i, g := range groups {
		if g == "" {
			return "", errors.New(errors.ErrCodeMalformedInput, "empty hex group at position %d", i)
		}
		code, err := strconv.ParseUint(g, 16, 32)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeMalformedInput, err, "invalid hex group %q", g)
		}
		out[i] = rune(code)
	}
	return string(out), nil
}

// BinaryEncode maps each character of text to its code point as an 8-digit
// zero-padded binary string, space-joined.
func BinaryEncode(text string) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%08b", r)
	}
	return b.String()
}

// BinaryDecode reverses BinaryEncode. Each space-separated group must be
// exactly eight binary digits; anything else returns a MALFORMED_INPUT
// error.
func BinaryDecode(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	groups := strings.Split(text, " ")
	out := make([]rune, len(groups))
	for i, g := range groups {
		if len(g) != 8 {
			return "", errors.New(errors.ErrCodeMalformedInput, "binary group %q is not 8 digits", g)
		}
		code, err := strconv.ParseUint(g, 2, 32)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeMalformedInput, err, "invalid binary group %q", g)
		}
		out[i] = rune(code)
	}
	return string(out), nil
}

// Reverse returns text with its characters in reverse order.
func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
