package images

import (
	"path/filepath"
	"strings"
)

// Format identifies the on-disk encoding of an image.
//
// The values match the names Go's image format registry reports from
// image.DecodeConfig, so a detected format converts directly.
type Format string

// Format constants
const (
	// FormatPNG is the PNG image format.
	FormatPNG Format = "png"
	// FormatJPEG is the JPEG image format.
	FormatJPEG Format = "jpeg"
	// FormatGIF is the GIF image format.
	FormatGIF Format = "gif"
	// FormatBMP is the BMP image format.
	FormatBMP Format = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF Format = "tiff"
	// FormatWebP is the WebP image format.
	FormatWebP Format = "webp"
)

// extensions maps lower-cased file extensions to their format.
var extensions = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
	".webp": FormatWebP,
}

// Supported reports whether the format can be both decoded and encoded.
func (f Format) Supported() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF, FormatWebP:
		return true
	}
	return false
}

func (f Format) String() string {
	return string(f)
}

// FormatFromPath guesses a format from the extension of path.
//
// Arguments:
//   - path: A file name or path.
//
// Returns:
//   - Format: The format matching the extension.
//   - bool: False if the extension is missing or unknown.
func FormatFromPath(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}
