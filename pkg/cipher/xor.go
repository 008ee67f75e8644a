package cipher

import (
	"encoding/base64"

	"github.com/cipherchat/cipherchat/pkg/errors"
)

// XOREncrypt combines each code point of plaintext with the repeating key
// stream derived from password and returns the base64 encoding of the
// resulting byte string.
//
// The transform is byte-oriented: code points above 255 (in the text or in
// the password) are truncated to their low byte and will not round-trip
// losslessly. This is an acknowledged limitation of the cipher, not a bug.
func XOREncrypt(plaintext, password string) (string, error) {
	if err := errors.ValidateKey(password); err != nil {
		return "", err
	}

	key := []rune(password)
	runes := []rune(plaintext)
	raw := make([]byte, len(runes))
	for i, r := range runes {
		raw[i] = byte(r ^ key[i%len(key)])
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// XORDecrypt reverses XOREncrypt: it base64-decodes ciphertext and applies
// the same repeating-key XOR. Input that is not valid base64 returns a
// MALFORMED_INPUT error rather than silently passing the text through.
func XORDecrypt(ciphertext, password string) (string, error) {
	if err := errors.ValidateKey(password); err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMalformedInput, err, "ciphertext is not valid base64")
	}

	key := []rune(password)
	out := make([]rune, len(raw))
	for i, b := range raw {
		out[i] = rune(b ^ byte(key[i%len(key)]))
	}
	return string(out), nil
}
