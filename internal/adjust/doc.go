// Package adjust changes one perceptual component of sRGB hex colors.
//
// An Adjuster is built once from a Config naming a color model, one of its
// components, an operation and a value. Adjust then maps one line of hex
// text to another:
//
//  1. parse the hex text into an 8-bit sRGB color
//  2. divide by 255 to get floating point sRGB
//  3. convert to the model (Okhsl or Oklch)
//  4. set, increase or decrease the selected component
//  5. clamp out-of-range components, or reject them when NoClamp is set
//  6. convert back to sRGB, saturating each channel to [0,255]
//  7. format as hex, keeping the input's '#' convention
//
// Hue arithmetic wraps into [0,360) and is never clamped. Lightness,
// saturation and chroma are plain reals until step 5.
//
// # Errors
//
// Adjust returns *ParseError for malformed input and *OutOfBoundsError when
// NoClamp is set and a component leaves its range. New returns *ConfigError
// for configurations that cannot be applied. Use errors.As to inspect them.
//
// # Thread Safety
//
// An Adjuster is immutable after New and holds no per-call state, so one
// value may be shared by concurrent callers.
package adjust
