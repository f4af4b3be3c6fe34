// Package stream runs a per-line color transform over a reader and writer.
//
// A Processor reads lines from its input, hands each one to an Adjuster and
// writes the result followed by a newline. Lines are handled strictly in
// order, one at a time.
//
// # Failure Semantics
//
// The first error stops the run. Output already written for earlier lines
// stays written; nothing is written for the failing line or any line after
// it. The returned error carries the 1-based line number and still matches
// the adjuster's typed errors through errors.As.
//
// # Terminal Colors
//
// Output goes through a termenv.Output. When its profile supports color,
// each result is printed in the color it names. The characters written are
// unchanged apart from the escape sequences, and with the Ascii profile
// (the default for anything that is not a terminal) no escapes are added.
package stream
