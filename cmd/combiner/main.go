package main

import (
	"fmt"
	"os"

	"github.com/nvr-ai/go-combiner/combiner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	configPath   string
	jpegQuality  int
	webpQuality  float32
	webpLossless bool
	verbose      bool
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "combiner <first_image> <second_image> <output>",
		Short: "Combine two images by alternating their pixels",
		Long: "Combine two images of the same format into one. The larger image is\n" +
			"shrunk to the smaller one's size, then pixels are taken alternately\n" +
			"from each. The output is written in the inputs' format.",
		Example: "  combiner images/fcc_glyph.png images/pro.png images/output.png",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments parsed fine; failures from here on are logged by run.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return run(cmd, f, combiner.Job{
				FirstImage:  args[0],
				SecondImage: args[1],
				Output:      args[2],
			})
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML file with encoder options")
	cmd.Flags().IntVar(&f.jpegQuality, "jpeg-quality", 0, "JPEG quality 1-100 (overrides --config)")
	cmd.Flags().Float32Var(&f.webpQuality, "webp-quality", 0, "lossy WebP quality 0-100 (overrides --config)")
	cmd.Flags().BoolVar(&f.webpLossless, "webp-lossless", false, "write lossless WebP (overrides --config)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log every stage")

	return cmd
}

func run(cmd *cobra.Command, f flags, job combiner.Job) error {
	logger, err := newLogger(f.verbose)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to create logger: %v\n", err)
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts, err := loadOptions(cmd, f)
	if err != nil {
		logger.Error("invalid options", zap.Error(err))
		return err
	}

	c, err := combiner.New(combiner.Config{Logger: logger, Options: &opts})
	if err != nil {
		logger.Error("invalid options", zap.Error(err))
		return err
	}

	result, err := c.Run(job)
	if err != nil {
		logger.Error("combine failed", zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Combined image saved to %s (%s, %dx%d)\n",
		result.Output, result.Format, result.Width, result.Height)
	return nil
}

func loadOptions(cmd *cobra.Command, f flags) (combiner.Options, error) {
	opts := combiner.DefaultOptions()
	if f.configPath != "" {
		var err error
		if opts, err = combiner.LoadOptions(f.configPath); err != nil {
			return opts, err
		}
	}

	if cmd.Flags().Changed("jpeg-quality") {
		opts.Encode.JPEGQuality = f.jpegQuality
	}
	if cmd.Flags().Changed("webp-quality") {
		opts.Encode.WebPQuality = f.webpQuality
	}
	if cmd.Flags().Changed("webp-lossless") {
		opts.Encode.WebPLossless = f.webpLossless
	}
	return opts, opts.Encode.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}
