// Package cipher implements the CipherChat text transform library.
//
// Every function in this package is a pure, synchronous transform over
// caller-owned strings: classic toy ciphers (Caesar, repeating-key XOR),
// reversible codecs (base64, hex, binary), and small analysis helpers
// (fingerprint, password strength, cipher auto-detection).
//
// None of these transforms provide real security. The XOR cipher is
// trivially breakable, the Caesar shift is a puzzle, and the fingerprint
// is an explicitly non-cryptographic display hash. They exist to power a
// messaging demo, not to protect data.
//
// # Error Handling
//
// Decoders fail loudly: malformed base64, hex, or binary input returns a
// structured error with code MALFORMED_INPUT rather than silently passing
// the input through. See the errors package for code definitions.
//
// # Usage
//
//	enc := cipher.CaesarEncode("hello", 3)          // "khoor"
//	ct, err := cipher.XOREncrypt("hello", "key")    // base64 ciphertext
//	pt, err := cipher.XORDecrypt(ct, "key")         // "hello"
//	label := cipher.Detect("aGVsbG8=")              // "Base64"
package cipher
