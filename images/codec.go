package images

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// MaxPixels caps width*height of an image accepted by Decode and DecodeFile.
// At 4 bytes per pixel the default allows 1 GiB of decoded pixel data.
var MaxPixels uint64 = 1 << 28

// EncodeOptions tunes the lossy and compressed encoders.
type EncodeOptions struct {
	// JPEGQuality is the JPEG quality, 1-100.
	JPEGQuality int `json:"jpegQuality" yaml:"jpeg_quality"`
	// WebPQuality is the lossy WebP quality, 0-100.
	WebPQuality float32 `json:"webpQuality" yaml:"webp_quality"`
	// WebPLossless selects lossless WebP.
	WebPLossless bool `json:"webpLossless" yaml:"webp_lossless"`
	// TIFFCompress enables deflate compression for TIFF.
	TIFFCompress bool `json:"tiffCompress" yaml:"tiff_compress"`
}

// DefaultEncodeOptions returns the encoder settings used when none are given.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		JPEGQuality:  90,
		WebPQuality:  90,
		WebPLossless: false,
		TIFFCompress: true,
	}
}

// Validate rejects out-of-range quality settings.
func (o EncodeOptions) Validate() error {
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		return errors.Errorf("jpeg quality %d out of range [1, 100]", o.JPEGQuality)
	}
	if o.WebPQuality < 0 || o.WebPQuality > 100 {
		return errors.Errorf("webp quality %.1f out of range [0, 100]", o.WebPQuality)
	}
	return nil
}

// DecodeFile reads and decodes the image stored at path.
//
// Arguments:
//   - path: The file to read.
//
// Returns:
//   - *Image: The decoded RGBA8 pixels and the detected format.
//   - error: ErrIO if the file cannot be read, ErrDecode if it is not a
//     supported image.
//
// @example
//
//	img, err := images.DecodeFile("a.png")
//	if errors.Is(err, images.ErrIO) { ... }
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError(ErrIO, path, errors.Wrap(err, "failed to read image"))
	}
	return decode(data, path)
}

// Decode reads r to the end and decodes it. See DecodeFile.
func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewError(ErrIO, "", errors.Wrap(err, "failed to read image"))
	}
	return decode(data, "")
}

func decode(data []byte, path string) (*Image, error) {
	// The header is parsed before the pixel data so the format is known
	// even when the body turns out to be truncated.
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, NewError(ErrDecode, path, errors.Wrap(err, "failed to detect image format"))
	}

	format := Format(name)
	if !format.Supported() {
		return nil, NewError(ErrDecode, path, errors.Errorf("unsupported image format %q", name))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, NewError(ErrInvalidDimensions, path, dimensionsError(cfg.Width, cfg.Height))
	}
	if pixels := uint64(cfg.Width) * uint64(cfg.Height); pixels > MaxPixels {
		return nil, NewError(ErrInvalidDimensions, path,
			errors.Errorf("image is %dx%d, %d pixels exceeds the limit of %d", cfg.Width, cfg.Height, pixels, MaxPixels))
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, NewError(ErrDecode, path, errors.Wrapf(err, "failed to decode %s image", format))
	}

	return FromImage(img, format), nil
}

// Encode writes img to w in the given format.
//
// Arguments:
//   - w: The destination.
//   - img: The pixels to encode.
//   - format: The encoding to use.
//   - opts: Encoder settings.
//
// Returns:
//   - error: ErrEncode if the format is unsupported or the encoder fails.
func Encode(w io.Writer, img image.Image, format Format, opts EncodeOptions) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opts.JPEGQuality})
	case FormatGIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		compression := tiff.Uncompressed
		if opts.TIFFCompress {
			compression = tiff.Deflate
		}
		err = tiff.Encode(w, img, &tiff.Options{Compression: compression, Predictor: opts.TIFFCompress})
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Lossless: opts.WebPLossless, Quality: opts.WebPQuality})
	default:
		return NewError(ErrEncode, "", errors.Errorf("unsupported image format %q", format))
	}
	if err != nil {
		return NewError(ErrEncode, "", errors.Wrapf(err, "failed to encode %s image", format))
	}
	return nil
}
