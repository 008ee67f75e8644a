package cipher

import (
	"testing"

	"github.com/cipherchat/cipherchat/pkg/errors"
)

func TestXORRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
	}{
		{"simple", "hello world", "secret"},
		{"key longer than text", "hi", "averylongpassword"},
		{"single character key", "attack at dawn", "k"},
		{"empty plaintext", "", "key"},
		{"symbols in both", "p@y10ad!", "k#y?"},
		{"latin-1 range", "café", "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := XOREncrypt(tt.text, tt.key)
			if err != nil {
				t.Fatalf("XOREncrypt error: %v", err)
			}
			pt, err := XORDecrypt(ct, tt.key)
			if err != nil {
				t.Fatalf("XORDecrypt error: %v", err)
			}
			if pt != tt.text {
				t.Errorf("round trip = %q, want %q", pt, tt.text)
			}
		})
	}
}

func TestXOREncryptEmptyKey(t *testing.T) {
	if _, err := XOREncrypt("text", ""); !errors.Is(err, errors.ErrCodeInvalidKey) {
		t.Errorf("XOREncrypt with empty key: error = %v, want INVALID_KEY", err)
	}
	if _, err := XORDecrypt("dGV4dA==", ""); !errors.Is(err, errors.ErrCodeInvalidKey) {
		t.Errorf("XORDecrypt with empty key: error = %v, want INVALID_KEY", err)
	}
}

// The reference behavior returned the original ciphertext unchanged when it
// was not valid base64. This implementation deliberately surfaces an
// explicit MALFORMED_INPUT error instead, so callers cannot mistake garbage
// for a successful decryption.
func TestXORDecryptMalformedBase64(t *testing.T) {
	for _, input := range []string{"not base64!!!", "a", "%%%%"} {
		if _, err := XORDecrypt(input, "key"); !errors.Is(err, errors.ErrCodeMalformedInput) {
			t.Errorf("XORDecrypt(%q): error = %v, want MALFORMED_INPUT", input, err)
		}
	}
}

func TestXORWrongKeyProducesGarbage(t *testing.T) {
	ct, err := XOREncrypt("hello", "right")
	if err != nil {
		t.Fatalf("XOREncrypt error: %v", err)
	}
	pt, err := XORDecrypt(ct, "wrong")
	if err != nil {
		// Well-formed base64 always decodes; the failure mode is garbage
		// output, not an error.
		t.Fatalf("XORDecrypt error: %v", err)
	}
	if pt == "hello" {
		t.Error("decryption with the wrong key should not recover the plaintext")
	}
}

func TestXORCiphertextIsBase64(t *testing.T) {
	ct, err := XOREncrypt("some message", "key")
	if err != nil {
		t.Fatalf("XOREncrypt error: %v", err)
	}
	if Detect(ct) != LabelBase64 || len(ct)%4 != 0 {
		t.Errorf("ciphertext %q is not padded base64", ct)
	}
}
