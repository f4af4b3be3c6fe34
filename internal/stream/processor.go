package stream

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/ironsheep/okshift/internal/srgb"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Adjuster transforms one line of text.
type Adjuster interface {
	Adjust(input string) (string, error)
}

// Processor drives an Adjuster over line-oriented input.
type Processor struct {
	adjuster Adjuster
	in       io.Reader
	out      *termenv.Output
	debug    *log.Logger
	lines    int
}

// Option configures a Processor.
type Option func(*processorOptions)

type processorOptions struct {
	profile *termenv.Profile
	debug   *log.Logger
}

// WithColor fixes the color profile instead of detecting it from the
// output and environment. termenv.Ascii disables coloring.
func WithColor(p termenv.Profile) Option {
	return func(o *processorOptions) {
		o.profile = &p
	}
}

// WithDebugLog logs every transformed line to l.
func WithDebugLog(l *log.Logger) Option {
	return func(o *processorOptions) {
		o.debug = l
	}
}

// New creates a Processor reading from in and writing to out.
func New(a Adjuster, in io.Reader, out io.Writer, opts ...Option) *Processor {
	var o processorOptions
	for _, opt := range opts {
		opt(&o)
	}

	var outOpts []termenv.OutputOption
	if o.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*o.profile))
	}

	return &Processor{
		adjuster: a,
		in:       in,
		out:      termenv.NewOutput(out, outOpts...),
		debug:    o.debug,
	}
}

// Run processes input until EOF or the first error.
func (p *Processor) Run() error {
	scanner := bufio.NewScanner(p.in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		result, err := p.adjuster.Adjust(line)
		if err != nil {
			return errors.Wrapf(err, "line %d (%s)", lineNo, line)
		}

		if p.debug != nil {
			p.debug.Printf("line %d: %s -> %s", lineNo, line, result)
		}

		if _, err := fmt.Fprintln(p.out, p.render(result)); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
		p.lines++
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read input after line %d", lineNo)
	}

	return nil
}

// Lines returns the number of lines written so far.
func (p *Processor) Lines() int {
	return p.lines
}

// Profile returns the color profile output is rendered with.
func (p *Processor) Profile() termenv.Profile {
	return p.out.Profile
}

// render colors result with the color it names when the profile allows.
func (p *Processor) render(result string) string {
	if p.out.Profile == termenv.Ascii {
		return result
	}
	hex, err := srgb.Parse(result)
	if err != nil {
		return result
	}
	return p.out.String(result).Foreground(p.out.Color(hex.Color.Hex(true))).String()
}
