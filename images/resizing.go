package images

import (
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Resize scales img to exactly width x height with a triangle (bilinear) filter.
//
// Arguments:
//   - img: The image to resize. It is not modified.
//   - width: The target width in pixels.
//   - height: The target height in pixels.
//
// Returns:
//   - *Image: A new image with its own pixel buffer and img's format.
//   - error: ErrInvalidDimensions if the source or target has a zero side.
func Resize(img *Image, width, height int) (*Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, NewError(ErrInvalidDimensions, "", errors.Wrap(dimensionsError(width, height), "invalid resize target"))
	}

	if img.Width == width && img.Height == height {
		return clone(img), nil
	}

	// FromImage copies, so the result never aliases img.Data.
	resized := resize.Resize(uint(width), uint(height), img.NRGBA(), resize.Bilinear)
	return FromImage(resized, img.Format), nil
}

// Standardize brings two images to the same pixel grid by shrinking the one
// with more pixels to the other's width and height.
//
// The image with strictly fewer pixels is the reference. On a tie b is the
// reference, so a is only resampled when the shapes differ (e.g. 2x8 vs 4x4).
//
// Arguments:
//   - a: The first image.
//   - b: The second image.
//
// Returns:
//   - *Image, *Image: New images, in the same order, with equal dimensions.
//   - error: ErrInvalidDimensions if either input has a zero side.
//
// @example
//
//	a, b, err := images.Standardize(a, b)
//	// a.Width == b.Width && a.Height == b.Height
func Standardize(a, b *Image) (*Image, *Image, error) {
	if err := a.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "first image")
	}
	if err := b.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "second image")
	}

	if a.PixelCount() < b.PixelCount() {
		resized, err := Resize(b, a.Width, a.Height)
		if err != nil {
			return nil, nil, err
		}
		return clone(a), resized, nil
	}

	resized, err := Resize(a, b.Width, b.Height)
	if err != nil {
		return nil, nil, err
	}
	return resized, clone(b), nil
}

func clone(img *Image) *Image {
	data := make([]byte, len(img.Data))
	copy(data, img.Data)
	return &Image{Format: img.Format, Data: data, Width: img.Width, Height: img.Height}
}
