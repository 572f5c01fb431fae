// Package combiner merges two equally sized images into one by alternating
// their pixels, and writes the result back out in the inputs' format.
package combiner

import (
	"github.com/nvr-ai/go-combiner/images"
	"github.com/pkg/errors"
)

// AlternatePixels builds an RGBA8 buffer by taking pixels alternately from a
// and b along the flattened, row-major pixel stream.
//
// Even pixel indices (byte offsets where i%8 == 0) come from a, odd ones
// from b. All four channel bytes of a pixel are copied together, so the
// alternation is per pixel, never per byte. The result is a new buffer of
// the same length as the inputs.
//
// Arguments:
//   - a: The first RGBA8 buffer.
//   - b: The second RGBA8 buffer, the same length as a.
//
// Returns:
//   - []byte: The combined buffer.
//   - error: ErrFormatMismatch if the lengths differ, ErrInvalidDimensions if
//     the length is not a whole number of pixels.
//
// @example
//
//	out, _ := AlternatePixels(red, blue)
//	// out = red[0:4] + blue[4:8] + red[8:12] + ...
func AlternatePixels(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, images.NewError(images.ErrFormatMismatch, "",
			errors.Errorf("pixel buffers differ in length: %d != %d", len(a), len(b)))
	}
	if len(a)%images.BytesPerPixel != 0 {
		return nil, images.NewError(images.ErrInvalidDimensions, "",
			errors.Errorf("buffer length %d is not a multiple of %d", len(a), images.BytesPerPixel))
	}

	combined := make([]byte, len(a))
	for i := 0; i < len(a); i += images.BytesPerPixel {
		src := b
		if i%(2*images.BytesPerPixel) == 0 {
			src = a
		}
		copy(combined[i:i+images.BytesPerPixel], src[i:i+images.BytesPerPixel])
	}

	return combined, nil
}

// CombineImages checks that a and b share a format and a pixel grid, then
// alternates their pixels.
//
// Arguments:
//   - a: The image supplying even pixels.
//   - b: The image supplying odd pixels.
//
// Returns:
//   - []byte: The combined RGBA8 buffer, sized a.Width*a.Height*4.
//   - error: ErrFormatMismatch or ErrInvalidDimensions.
func CombineImages(a, b *images.Image) ([]byte, error) {
	if a.Format != b.Format {
		return nil, images.NewError(images.ErrFormatMismatch, "",
			errors.Errorf("cannot combine %s with %s", a.Format, b.Format))
	}
	if a.Width != b.Width || a.Height != b.Height {
		return nil, images.NewError(images.ErrInvalidDimensions, "",
			errors.Errorf("images differ in size: %dx%d != %dx%d", a.Width, a.Height, b.Width, b.Height))
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return AlternatePixels(a.Data, b.Data)
}
