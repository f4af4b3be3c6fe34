// Package okcolor converts between sRGB and the Oklab family of perceptual
// color models.
//
// Two cylindrical models are provided:
//   - Okhsl: hue, saturation and lightness shaped to the sRGB gamut, so that
//     every saturation in [0,1] and lightness in [0,1] maps to a displayable
//     color.
//   - Oklch: lightness, chroma and hue as polar coordinates of Oklab. Chroma
//     is not bounded by the gamut, so some combinations have no exact sRGB
//     equivalent.
//
// Hues are expressed in degrees. Forward transforms return hues in [0,360);
// inverse transforms accept any finite hue.
//
// Both models share one Oklab matrix pair taken from Björn Ottosson's
// reference implementation (https://bottosson.github.io/posts/oklab/). The
// Okhsl gamut approximation follows the same author's color picker post.
// go-colorful supplies the sRGB transfer function and the Oklab/Oklch polar
// conversion.
package okcolor
