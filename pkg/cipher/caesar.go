package cipher

// DefaultShift is the Caesar shift used when the caller does not specify one.
const DefaultShift = 3

// CaesarEncode shifts each ASCII letter of text forward by shift positions,
// wrapping mod 26 and preserving case. Non-letter characters pass through
// unchanged. A shift of 0 or 26 is the identity transform.
func CaesarEncode(text string, shift int) string {
	// Normalize into [0,25] so negative and >26 shifts behave consistently.
	shift = ((shift % 26) + 26) % 26

	out := []rune(text)
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z':
			out[i] = 'a' + (r-'a'+rune(shift))%26
		case r >= 'A' && r <= 'Z':
			out[i] = 'A' + (r-'A'+rune(shift))%26
		}
	}
	return string(out)
}

// CaesarDecode reverses CaesarEncode by applying the complementary shift,
// so CaesarDecode(CaesarEncode(x, s), s) == x for any integer shift s.
func CaesarDecode(text string, shift int) string {
	return CaesarEncode(text, 26-((shift%26)+26)%26)
}
