// Package qr renders a toy QR-style module matrix for visual effect.
//
// The output mimics the look of a QR code (finder squares in three corners,
// a noisy data area seeded from the input text) but carries no Reed-Solomon
// coding, no format information, and no standard versioning. It is NOT
// scannable and exists purely as demo decoration.
package qr

import (
	"image"
	"image/color"
	"strconv"

	"github.com/cipherchat/cipherchat/pkg/cipher"
	"github.com/cipherchat/cipherchat/pkg/errors"
)

// DefaultSize is the module count per side when the caller does not choose.
const DefaultSize = 25

// finderSize is the side length of the corner finder squares.
const finderSize = 7

// Matrix builds a size×size module grid for text. Identical inputs always
// produce identical grids; the data modules are seeded from the text's
// fingerprint. Size must be at least 2*finderSize+1 modules.
func Matrix(text string, size int) ([][]bool, error) {
	if size < 2*finderSize+1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "matrix size %d too small (min %d)", size, 2*finderSize+1)
	}

	seed, _ := strconv.ParseUint(cipher.Fingerprint(text), 16, 32)
	rng := uint32(seed) | 1

	m := make([][]bool, size)
	for y := range m {
		m[y] = make([]bool, size)
		for x := range m[y] {
			// xorshift32 keeps the pattern deterministic per input.
			rng ^= rng << 13
			rng ^= rng >> 17
			rng ^= rng << 5
			m[y][x] = rng&1 == 1
		}
	}

	drawFinder(m, 0, 0)
	drawFinder(m, size-finderSize, 0)
	drawFinder(m, 0, size-finderSize)
	return m, nil
}

// drawFinder stamps the classic 7×7 concentric finder square at (ox, oy).
func drawFinder(m [][]bool, ox, oy int) {
	for dy := 0; dy < finderSize; dy++ {
		for dx := 0; dx < finderSize; dx++ {
			ring := dx == 0 || dy == 0 || dx == finderSize-1 || dy == finderSize-1
			core := dx >= 2 && dx <= 4 && dy >= 2 && dy <= 4
			m[oy+dy][ox+dx] = ring || core
		}
	}
}

// Render rasterizes the matrix for text into a black-on-white image with
// the given module pixel scale and a one-module quiet border.
func Render(text string, size, scale int) (*image.RGBA, error) {
	if scale < 1 {
		scale = 1
	}
	m, err := Matrix(text, size)
	if err != nil {
		return nil, err
	}

	side := (size + 2) * scale
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			mx, my := x/scale-1, y/scale-1
			c := white
			if mx >= 0 && my >= 0 && mx < size && my < size && m[my][mx] {
				c = black
			}
			img.Set(x, y, c)
		}
	}
	return img, nil
}
