// Package stego implements least-significant-bit image steganography.
//
// A payload is hidden by writing its bits, most significant bit first, into
// the least significant bit of the red channel of successive pixels. Green,
// blue, and alpha channels are never touched, so the change is invisible to
// casual viewing. A fixed 16-bit end marker is appended after the payload so
// extraction knows where to stop.
//
// The scheme is fragile on purpose: any lossy recompression of the carrier
// destroys the payload. Carriers must be lossless formats (PNG).
//
// # Capacity
//
// Each pixel carries one bit, so a W×H carrier holds (W*H − 16) / 8 payload
// bytes. Embedding a payload that does not fit fails with a
// CAPACITY_EXCEEDED error before any pixel is modified; extraction on a
// carrier with no marker fails with PAYLOAD_NOT_FOUND.
package stego
