// Package images - decoded raster images, their formats, and the codecs and
// resampling used to move between files and RGBA8 pixel buffers.
package images

import (
	"image"
	"image/draw"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Image represents a fully decoded image with its source format.
//
// Data holds non-premultiplied RGBA8 pixels in row-major order with no
// padding between rows, so len(Data) == Width*Height*BytesPerPixel.
// Operations in this package never modify an Image in place.
type Image struct {
	// The format of the image.
	Format Format `json:"format" yaml:"format"`
	// The data of the image.
	Data []byte `json:"data" yaml:"data"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// PixelCount returns Width*Height.
func (i *Image) PixelCount() uint64 {
	if i.Width <= 0 || i.Height <= 0 {
		return 0
	}
	return uint64(i.Width) * uint64(i.Height)
}

// Validate checks that the image has positive dimensions and a buffer sized to them.
func (i *Image) Validate() error {
	if i.Width <= 0 || i.Height <= 0 {
		return NewError(ErrInvalidDimensions, "", dimensionsError(i.Width, i.Height))
	}
	if want := i.Width * i.Height * BytesPerPixel; len(i.Data) != want {
		return NewError(ErrInvalidDimensions, "", bufferLengthError(len(i.Data), want))
	}
	return nil
}

// NRGBA returns a view of the pixel data as an *image.NRGBA.
// The view shares the Data slice and must not be written to.
func (i *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    i.Data,
		Stride: i.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, i.Width, i.Height),
	}
}

// FromImage materializes any image.Image into an RGBA8 Image tagged with format.
//
// Arguments:
//   - img: The source image. Its bounds may have a non-zero origin.
//   - format: The format tag to attach.
//
// Returns:
//   - *Image: A new image owning its own pixel buffer.
func FromImage(img image.Image, format Format) *Image {
	nrgba := toNRGBA(img)
	return &Image{
		Format: format,
		Data:   nrgba.Pix,
		Width:  nrgba.Rect.Dx(),
		Height: nrgba.Rect.Dy(),
	}
}

// toNRGBA copies img into a zero-origin NRGBA with a tight stride.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
