// Package imaging implements the color-replacement core of png-recolor.
//
// The package is a small set of stateless functions that parse user-supplied
// color strings, compute a per-pixel similarity mask against a source color,
// and rewrite the RGB channels of matching pixels with a target color. All
// operations work with standard Go image.Image types; images are normalized
// to 4-channel NRGBA before processing, so inputs without an alpha channel
// behave as fully opaque.
//
// # Similarity Metrics
//
// Two metrics decide whether a pixel is "close" to the source color:
//   - euclidean: combined RGB distance, normalized so that the distance from
//     black to white is exactly 1.0
//   - channel: each RGB channel compared independently against
//     tolerance * 255
//
// In both cases the tolerance is a fraction where 0.0 matches only pixels
// exactly equal to the source color and 1.0 matches every opaque pixel.
// Tolerance is not clamped; values outside [0, 1] simply produce an empty or
// full mask.
//
// # Transparency
//
// The alpha channel is read-only. Fully transparent pixels (alpha = 0) are
// never recolored regardless of tolerance, and partially transparent pixels
// keep their alpha value when their RGB channels are rewritten.
//
// # Error Handling
//
// Failures are reported through sentinel errors so callers can classify them
// with errors.Is:
//   - ErrInvalidColorFormat / ErrInvalidColorRange for malformed color strings
//   - ErrUnsupportedMetric for metric selectors outside the closed set
//   - ErrFileNotFound when an input path is not an existing regular file
//
// Decode and encode failures propagate as wrapped errors from the underlying
// codec without special handling.
package imaging
