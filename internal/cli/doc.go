// Package cli builds the command shared by the okhsl and oklch tools.
//
// Both binaries take the same three positional arguments:
//
//	okhsl COMPONENT ADJUSTMENT VALUE [--no-clamp] [--color auto|always|never]
//
// COMPONENT is one of the model's components by letter or full name,
// ADJUSTMENT is "=", "+" or "-" (or set, increase, decrease) and VALUE is a
// number. Because flags are parsed anywhere on the line, a negative VALUE
// has to follow "--":
//
//	okhsl -- h = -30
//
// Colors are read one per line from stdin and written one per line to
// stdout.
//
// # Environment
//
//	OKSHIFT_LOG_LEVEL=debug   log configuration and every line to stderr
//	OKSHIFT_COLOR=MODE        default for --color
package cli
