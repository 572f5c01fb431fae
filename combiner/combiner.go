package combiner

import (
	"github.com/nvr-ai/go-combiner/images"
	"github.com/nvr-ai/go-combiner/profiler"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Stage names recorded in Result.Timings.
const (
	StageDecode      = "decode"
	StageStandardize = "standardize"
	StageCombine     = "combine"
	StageEncode      = "encode"
)

// Job names the two inputs and the output of one run.
type Job struct {
	// FirstImage supplies the even pixels.
	FirstImage string `json:"firstImage" yaml:"first_image"`
	// SecondImage supplies the odd pixels.
	SecondImage string `json:"secondImage" yaml:"second_image"`
	// Output is where the combined image is written.
	Output string `json:"output" yaml:"output"`
}

// Config configures a Combiner.
type Config struct {
	// Logger receives progress messages. Defaults to a no-op logger.
	Logger *zap.Logger
	// Options holds encoder settings. Nil means DefaultOptions.
	Options *Options
}

// Result describes a completed run.
type Result struct {
	// Format is the shared input format the output was written in.
	Format images.Format
	// Width and Height are the output dimensions.
	Width, Height int
	// Output is the written path.
	Output string
	// Bytes is the size of the written file.
	Bytes int
	// Timings lists the duration of every stage that ran.
	Timings []profiler.Stage
}

// Combiner runs combine jobs.
type Combiner struct {
	logger  *zap.Logger
	options Options
}

// New creates a Combiner.
//
// Arguments:
//   - cfg: The logger and encoder options to use.
//
// Returns:
//   - *Combiner: The combiner.
//   - error: If the encoder options are out of range.
func New(cfg Config) (*Combiner, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	options := DefaultOptions()
	if cfg.Options != nil {
		options = *cfg.Options
	}
	if err := options.Encode.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid encode options")
	}
	return &Combiner{logger: logger, options: options}, nil
}

// Run decodes both inputs, checks they share a format, shrinks the larger to
// the smaller's grid, alternates their pixels and writes the result to
// job.Output in the input format.
//
// The format check happens before any resampling. Every failure is returned
// as an *images.Error whose Kind identifies the cause, and no output file is
// created unless the run succeeds.
//
// Arguments:
//   - job: The input and output paths.
//
// Returns:
//   - *Result: What was written. On error it still carries the timings of
//     the stages that ran.
//   - error: The first failure.
func (c *Combiner) Run(job Job) (*Result, error) {
	timer := profiler.NewStageTimer()
	result := &Result{Output: job.Output}
	log := c.logger.With(
		zap.String("first", job.FirstImage),
		zap.String("second", job.SecondImage),
		zap.String("output", job.Output),
	)
	log.Info("combining images")

	defer func() {
		result.Timings = timer.Stages()
		timer.Log(log)
	}()

	done := timer.StartOperation(StageDecode)
	first, err := images.DecodeFile(job.FirstImage)
	if err != nil {
		done()
		return result, errors.Wrap(err, "first image")
	}
	second, err := images.DecodeFile(job.SecondImage)
	done()
	if err != nil {
		return result, errors.Wrap(err, "second image")
	}
	log.Debug("decoded inputs",
		zap.Stringer("format", first.Format),
		zap.Int("first_width", first.Width), zap.Int("first_height", first.Height),
		zap.Stringer("second_format", second.Format),
		zap.Int("second_width", second.Width), zap.Int("second_height", second.Height),
	)

	if first.Format != second.Format {
		return result, images.NewError(images.ErrFormatMismatch, "",
			errors.Errorf("%s is %s but %s is %s", job.FirstImage, first.Format, job.SecondImage, second.Format))
	}
	result.Format = first.Format

	if f, ok := images.FormatFromPath(job.Output); ok && f != first.Format {
		log.Warn("output extension does not match the format being written",
			zap.Stringer("extension_format", f), zap.Stringer("format", first.Format))
	}

	done = timer.StartOperation(StageStandardize)
	first, second, err = images.Standardize(first, second)
	done()
	if err != nil {
		return result, err
	}
	result.Width, result.Height = first.Width, first.Height

	done = timer.StartOperation(StageCombine)
	combined, err := CombineImages(first, second)
	done()
	if err != nil {
		return result, err
	}

	done = timer.StartOperation(StageEncode)
	n, err := c.write(combined, result.Width, result.Height, job.Output, result.Format)
	done()
	if err != nil {
		return result, err
	}
	result.Bytes = n

	log.Info("combined image written",
		zap.Stringer("format", result.Format),
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
		zap.String("size", profiler.FormatBytes(uint64(n))),
	)
	return result, nil
}

func (c *Combiner) write(data []byte, width, height int, name string, format images.Format) (int, error) {
	out, err := NewOutputImage(width, height, name)
	if err != nil {
		return 0, err
	}
	if err := out.SetData(data); err != nil {
		return 0, err
	}
	return out.WriteToFile(format, c.options.Encode)
}
