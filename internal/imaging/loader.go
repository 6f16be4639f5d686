package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrFileNotFound indicates an input path that does not reference an
// existing regular file.
var ErrFileNotFound = errors.New("input file not found")

// Load reads and decodes the image at path.
//
// The path is checked before any decode is attempted; a missing path or one
// that is not a regular file returns ErrFileNotFound. Decode failures
// (corrupt data, unsupported format) propagate as wrapped codec errors.
func Load(path string) (image.Image, error) {
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Save encodes img as an RGBA PNG at path, overwriting any existing file
// without confirmation.
func Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// DefaultOutputPath derives the output path for an input file by inserting
// "_converted" before the extension. The output is always a .png path
// regardless of the input extension.
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_converted.png"
}

// FileResult describes one completed file conversion.
type FileResult struct {
	// InputPath is the file that was read.
	InputPath string `json:"input_path"`

	// OutputPath is the file that was written.
	OutputPath string `json:"output_path"`

	// Width of the converted image in pixels.
	Width int `json:"width"`

	// Height of the converted image in pixels.
	Height int `json:"height"`

	// MatchedPixels is the number of pixels rewritten to the target color.
	MatchedPixels int `json:"matched_pixels"`
}

// RecolorFile loads the image at inputPath, recolors it with opts, and
// writes the result as an RGBA PNG.
//
// An empty outputPath selects DefaultOutputPath(inputPath). The input file
// is fully read and closed before the output file is created; a failed write
// may leave a partial output file behind, no cleanup is attempted.
func RecolorFile(inputPath, outputPath string, opts RecolorOptions) (*FileResult, error) {
	img, err := Load(inputPath)
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}

	result, err := Recolor(img, opts)
	if err != nil {
		return nil, err
	}

	if err := Save(outputPath, result.Image); err != nil {
		return nil, err
	}

	return &FileResult{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		Width:         result.Width,
		Height:        result.Height,
		MatchedPixels: result.MatchedPixels,
	}, nil
}
