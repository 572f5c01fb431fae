package combiner

import (
	"bytes"

	"github.com/google/renameio/v2"
	"github.com/nvr-ai/go-combiner/images"
	"github.com/pkg/errors"
)

// OutputImage is the destination of a combine run: a fixed-capacity RGBA8
// buffer plus the path it will be written to.
type OutputImage struct {
	width    int
	height   int
	capacity int
	data     []byte
	// Name is the path the image is written to.
	Name string
}

// NewOutputImage creates an OutputImage whose capacity is exactly one
// width x height RGBA8 frame.
//
// Arguments:
//   - width: The output width in pixels.
//   - height: The output height in pixels.
//   - name: The destination path.
//
// Returns:
//   - *OutputImage: An image with an empty buffer.
//   - error: ErrInvalidDimensions if either side is not positive.
func NewOutputImage(width, height int, name string) (*OutputImage, error) {
	return NewOutputImageWithCapacity(width, height, name, width*height*images.BytesPerPixel)
}

// NewOutputImageWithCapacity is NewOutputImage with an explicit buffer capacity in bytes.
func NewOutputImageWithCapacity(width, height int, name string, capacity int) (*OutputImage, error) {
	if width <= 0 || height <= 0 {
		return nil, images.NewError(images.ErrInvalidDimensions, name,
			errors.Errorf("invalid output dimensions: %dx%d", width, height))
	}
	if capacity < 0 {
		return nil, images.NewError(images.ErrBufferTooSmall, name,
			errors.Errorf("negative capacity %d", capacity))
	}

	return &OutputImage{
		width:    width,
		height:   height,
		capacity: capacity,
		data:     make([]byte, 0, capacity),
		Name:     name,
	}, nil
}

// Width returns the output width in pixels.
func (o *OutputImage) Width() int { return o.width }

// Height returns the output height in pixels.
func (o *OutputImage) Height() int { return o.height }

// Capacity returns the buffer capacity in bytes.
func (o *OutputImage) Capacity() int { return o.capacity }

// Data returns the stored buffer.
func (o *OutputImage) Data() []byte { return o.data }

// SetData replaces the stored buffer with data.
//
// Returns ErrBufferTooSmall, leaving the previous contents in place, when
// len(data) exceeds Capacity.
func (o *OutputImage) SetData(data []byte) error {
	if len(data) > o.capacity {
		return images.NewError(images.ErrBufferTooSmall, o.Name,
			errors.Errorf("%d bytes do not fit in a %d byte buffer", len(data), o.capacity))
	}
	o.data = data
	return nil
}

// WriteToFile encodes the buffer as a width x height RGBA8 image in format
// and stores it at Name.
//
// The image is fully encoded in memory and then moved into place with an
// atomic rename, so Name is either the complete new image or untouched.
//
// Arguments:
//   - format: The encoding to write.
//   - opts: Encoder settings.
//
// Returns:
//   - int: The number of bytes written.
//   - error: ErrEncode if the buffer does not hold a full frame or the encoder
//     fails, ErrIO if the file cannot be written.
func (o *OutputImage) WriteToFile(format images.Format, opts images.EncodeOptions) (int, error) {
	img := &images.Image{Format: format, Data: o.data, Width: o.width, Height: o.height}
	if err := img.Validate(); err != nil {
		return 0, images.NewError(images.ErrEncode, o.Name, errors.Wrap(err, "output buffer is not a full frame"))
	}

	var buf bytes.Buffer
	if err := images.Encode(&buf, img.NRGBA(), format, opts); err != nil {
		return 0, errors.Wrapf(err, "encoding %s", o.Name)
	}

	if err := renameio.WriteFile(o.Name, buf.Bytes(), 0o644); err != nil {
		return 0, images.NewError(images.ErrIO, o.Name, errors.Wrap(err, "failed to write image"))
	}
	return buf.Len(), nil
}
