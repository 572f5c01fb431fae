package combiner

import (
	"os"

	"github.com/nvr-ai/go-combiner/images"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Options is the on-disk configuration for a Combiner.
type Options struct {
	// Encode holds the encoder settings used for the output image.
	Encode images.EncodeOptions `yaml:",inline"`
}

// DefaultOptions returns the options used when no file is given.
func DefaultOptions() Options {
	return Options{Encode: images.DefaultEncodeOptions()}
}

// LoadOptions reads a YAML options file on top of DefaultOptions.
//
// Arguments:
//   - path: The YAML file to read.
//
// Returns:
//   - Options: The merged options.
//   - error: If the file cannot be read or parsed, or a value is out of range.
//
// @example
//
//	# combiner.yaml
//	jpeg_quality: 85
//	webp_lossless: true
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(err, "failed to read options")
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "failed to parse options %s", path)
	}
	if err := opts.Encode.Validate(); err != nil {
		return opts, errors.Wrapf(err, "invalid options %s", path)
	}

	return opts, nil
}
