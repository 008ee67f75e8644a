// Package pkg provides the core libraries for cipherchat.
//
// # Overview
//
// Cipherchat is a playground for classic text transforms wrapped in a small
// messaging app. The pkg directory is organized as follows:
//
//  1. [cipher] - Text transforms (Caesar, XOR, codecs, detection, hashing)
//  2. [stego] - LSB image steganography over PNG carriers
//  3. [qr] - Decorative QR-style matrix rendering
//  4. [chat] - Chat domain: records, service, and storage backends
//  5. [config], [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical flow for an encrypted message:
//
//	plaintext
//	     ↓
//	[cipher] package (Caesar shift or XOR + base64)
//	     ↓
//	[chat] package (Service stamps IDs, writes through a Repository)
//	     ↓
//	memory | file | redis | mongo backend
//
// Reading reverses the transform when the key (or stored shift) is available.
//
// # Quick Start
//
// Encrypt, detect, and fingerprint a message:
//
//	out, _ := cipher.XOREncrypt("attack at dawn", "hunter2")
//	kind := cipher.Detect(out)              // "Base64"
//	id := cipher.Fingerprint("attack at dawn")
//
// Hide it in an image instead:
//
//	img, _ := stego.ReadImage("photo.png")
//	_ = stego.Embed(img, "attack at dawn")
//	_ = stego.WriteImage("secret.png", img)
//
// # Main Packages
//
// [cipher] - The transform library: Caesar and XOR ciphers, base64/hex/binary
// codecs, rune reversal, encoding detection, the 32-bit fingerprint, and the
// password strength heuristic. None of it is real cryptography.
//
// [stego] - Least-significant-bit steganography on the red channel of RGBA
// images, with capacity checks and a 16-bit end marker.
//
// [qr] - Toy QR rendering: finder squares plus fingerprint-seeded noise.
//
// [chat] - Profiles, chats, and messages behind a Repository interface with
// four backends: memory (testing), file (CLI default), redis, and mongo.
//
// [config] - TOML configuration: listen address, identity, default shift,
// and storage backend selection.
//
// [errors] - Structured error codes shared by the library, API, and CLI.
//
// [observability] - No-op hook points for transforms, storage, and HTTP.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/cipher/... # Specific package
//	go test -run Example     # Examples only
//
// [cipher]: https://pkg.go.dev/github.com/cipherchat/cipherchat/pkg/cipher
// [stego]: https://pkg.go.dev/github.com/cipherchat/cipherchat/pkg/stego
// [qr]: https://pkg.go.dev/github.com/cipherchat/cipherchat/pkg/qr
// [chat]: https://pkg.go.dev/github.com/cipherchat/cipherchat/pkg/chat
// [config]: https://pkg.go.dev/github.com/cipherchat/cipherchat/pkg/config
// [errors]: https://pkg.go.dev/github.com/cipherchat/cipherchat/pkg/errors
// [observability]: https://pkg.go.dev/github.com/cipherchat/cipherchat/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/cipherchat/cipherchat/pkg/buildinfo
package pkg
