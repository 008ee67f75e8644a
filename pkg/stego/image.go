package stego

import (
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/cipherchat/cipherchat/pkg/errors"
)

// ReadImage loads a PNG carrier from path and returns it as an RGBA buffer
// ready for Embed. Unreadable files and decode failures surface as
// MALFORMED_INPUT errors.
func ReadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open carrier %s", path)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode carrier %s", path)
	}

	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}

// WriteImage writes img to path as PNG. PNG is lossless, which the embedded
// payload depends on.
func WriteImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}
	return nil
}
