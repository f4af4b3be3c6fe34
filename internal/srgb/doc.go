// Package srgb reads and writes 8-bit sRGB colors in hexadecimal notation.
//
// This package is the text boundary of the adjustment pipeline. It turns a
// line such as "#ff8040" into an 8-bit color, converts that color to the
// floating point form used by the perceptual transforms, and formats the
// result back to text.
//
// # Accepted Forms
//
// Hex digits are case-insensitive and the leading '#' is optional:
//   - "#RRGGBB" or "RRGGBB": two digits per channel
//   - "#RGB" or "RGB": shorthand, each digit is doubled ("f80" = "ff8800")
//
// Anything else (wrong length, non-hex digits, surrounding whitespace, an
// alpha channel) is rejected.
//
// # Prefix Preservation
//
// Parse records whether the input carried a '#'. Formatting a Hex value
// re-adds the marker if and only if the original text had it, so a filter
// built on this package writes colors in the same convention it reads them.
//
// # Float Conversion
//
// Float returns a colorful.Color whose channels are exactly the 8-bit values
// divided by 255. FromFloat goes the other way, saturating each channel to
// [0,255] and rounding half up, which absorbs floating point error and
// out-of-gamut results from the inverse perceptual transforms.
package srgb
