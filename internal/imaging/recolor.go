package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupportedMetric indicates a metric selector outside the closed set
// {euclidean, channel}.
var ErrUnsupportedMetric = errors.New("unsupported metric")

// Metric selects the distance function used to judge color closeness.
type Metric string

const (
	// MetricEuclidean compares the combined RGB distance, normalized so that
	// the distance from black to white is exactly 1.0.
	MetricEuclidean Metric = "euclidean"

	// MetricChannel compares each RGB channel independently against
	// tolerance * 255.
	MetricChannel Metric = "channel"
)

// DefaultMetric is the metric applied when none is given.
const DefaultMetric = MetricEuclidean

// maxRGBDistance is the DistanceRgb value between opposite corners of the
// RGB cube, used to normalize euclidean distances into [0, 1].
var maxRGBDistance = math.Sqrt(3)

// ParseMetric validates a metric selector string.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricEuclidean, MetricChannel:
		return Metric(s), nil
	}
	return "", fmt.Errorf("%w: %q (must be %q or %q)", ErrUnsupportedMetric, s, MetricEuclidean, MetricChannel)
}

// RecolorOptions holds the parameters of one recolor pass.
//
// Tolerance is a fraction where 0.0 matches only pixels exactly equal to
// Source and 1.0 matches every opaque pixel. It is deliberately not clamped:
// values outside [0, 1] produce an empty or full mask.
type RecolorOptions struct {
	Source    RGBColor // Color to match against
	Target    RGBColor // Color to apply to matched pixels
	Tolerance float64  // Similarity threshold (0.0-1.0)
	Metric    Metric   // Distance function selecting the mask
}

// RecolorResult contains the recolored image and match statistics.
type RecolorResult struct {
	// Image is the recolored 4-channel buffer. It never aliases the input.
	Image *image.NRGBA `json:"-"`

	// Width of the output image in pixels (same as input).
	Width int `json:"width"`

	// Height of the output image in pixels (same as input).
	Height int `json:"height"`

	// MatchedPixels is the number of pixels rewritten to the target color.
	MatchedPixels int `json:"matched_pixels"`
}

// Recolor replaces the RGB channels of every pixel close to opts.Source with
// opts.Target, leaving all other pixels untouched.
//
// The input is first normalized to NRGBA; images without an alpha channel
// are extended with alpha = 255 for every pixel. A pixel is rewritten when
// its color is within opts.Tolerance of opts.Source under opts.Metric AND
// its alpha is greater than zero. Fully transparent pixels are never
// recolored, and the alpha channel is never altered.
//
// Returns ErrUnsupportedMetric if opts.Metric is not a known metric.
func Recolor(img image.Image, opts RecolorOptions) (*RecolorResult, error) {
	if _, err := ParseMetric(string(opts.Metric)); err != nil {
		return nil, err
	}

	// Clone normalizes any color model to a fresh non-premultiplied
	// 4-channel buffer; opaque models get alpha 255 synthesized.
	out := imaging.Clone(img)
	width := out.Bounds().Dx()
	height := out.Bounds().Dy()

	src := opts.Source.toColorful()
	threshold := opts.Tolerance * 255.0
	matched := 0

	for y := 0; y < height; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+width*4]
		for x := 0; x < width; x++ {
			px := row[x*4 : x*4+4]
			if px[3] == 0 {
				continue
			}

			var hit bool
			if opts.Metric == MetricChannel {
				hit = math.Abs(float64(px[0])-float64(opts.Source.R)) <= threshold &&
					math.Abs(float64(px[1])-float64(opts.Source.G)) <= threshold &&
					math.Abs(float64(px[2])-float64(opts.Source.B)) <= threshold
			} else {
				c := colorful.Color{
					R: float64(px[0]) / 255.0,
					G: float64(px[1]) / 255.0,
					B: float64(px[2]) / 255.0,
				}
				hit = c.DistanceRgb(src)/maxRGBDistance <= opts.Tolerance
			}

			if hit {
				px[0], px[1], px[2] = opts.Target.R, opts.Target.G, opts.Target.B
				matched++
			}
		}
	}

	return &RecolorResult{
		Image:         out,
		Width:         width,
		Height:        height,
		MatchedPixels: matched,
	}, nil
}

// toColorful maps the 8-bit components into go-colorful's 0-1 channel space.
func (c RGBColor) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
