package stego

import (
	"image"
	"strings"

	"github.com/cipherchat/cipherchat/pkg/errors"
)

// endMarker terminates the payload bit stream. Extraction stops at its
// first occurrence.
const endMarker = "1111111111111110"

// Capacity returns the number of payload bytes a carrier with the given
// bounds can hold, after reserving room for the end marker.
func Capacity(bounds image.Rectangle) int {
	bits := bounds.Dx()*bounds.Dy() - len(endMarker)
	if bits < 0 {
		return 0
	}
	return bits / 8
}

// Embed hides text in img by setting the least significant bit of the red
// channel of successive pixels. The payload is the UTF-8 encoding of text,
// eight bits per byte MSB-first, followed by the end marker.
//
// If the carrier is too small for payload plus marker, Embed returns a
// CAPACITY_EXCEEDED error and leaves the image untouched.
func Embed(img *image.RGBA, text string) error {
	payload := []byte(text)
	pixels := img.Bounds().Dx() * img.Bounds().Dy()
	needed := len(payload)*8 + len(endMarker)
	if needed > pixels {
		return errors.New(errors.ErrCodeCapacityExceeded,
			"payload needs %d bits but carrier has %d pixels (capacity %d bytes)",
			needed, pixels, Capacity(img.Bounds()))
	}

	bits := payloadBits(payload)
	bounds := img.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y && i < len(bits); y++ {
		for x := bounds.Min.X; x < bounds.Max.X && i < len(bits); x++ {
			// Red channel byte of pixel (x,y); stride is 4 bytes (R,G,B,A).
			idx := img.PixOffset(x, y)
			if bits[i] == '1' {
				img.Pix[idx] |= 1
			} else {
				img.Pix[idx] &^= 1
			}
			i++
		}
	}
	return nil
}

// Extract reads the least significant bit of the red channel of every pixel,
// scans the accumulated bit stream for the first occurrence of the end
// marker, and decodes the preceding bits eight at a time back into bytes.
//
// If the marker never occurs, Extract returns a PAYLOAD_NOT_FOUND error.
func Extract(img image.Image) (string, error) {
	bounds := img.Bounds()
	var bits strings.Builder
	bits.Grow(bounds.Dx() * bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; the low bit of the original
			// 8-bit value is bit 8 here.
			if (r>>8)&1 == 1 {
				bits.WriteByte('1')
			} else {
				bits.WriteByte('0')
			}
		}
	}

	stream := bits.String()
	end := strings.Index(stream, endMarker)
	if end < 0 {
		return "", errors.New(errors.ErrCodePayloadNotFound, "no hidden payload: end marker not found")
	}

	payload := make([]byte, 0, end/8)
	for i := 0; i+8 <= end; i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b <<= 1
			if stream[i+j] == '1' {
				b |= 1
			}
		}
		payload = append(payload, b)
	}
	return string(payload), nil
}

// payloadBits renders payload as a bit string, eight bits per byte
// MSB-first, with the end marker appended.
func payloadBits(payload []byte) string {
	var b strings.Builder
	b.Grow(len(payload)*8 + len(endMarker))
	for _, c := range payload {
		for j := 7; j >= 0; j-- {
			if (c>>uint(j))&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	b.WriteString(endMarker)
	return b.String()
}
