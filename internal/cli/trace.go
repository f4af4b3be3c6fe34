package cli

import (
	"log"

	"github.com/ironsheep/okshift/internal/adjust"
	"github.com/ironsheep/okshift/internal/srgb"
)

// tracer logs the perceptual coordinates of each color before and after
// the adjustment. Used only with debug logging.
type tracer struct {
	adjuster *adjust.Adjuster
	log      *log.Logger
}

func (t tracer) Adjust(input string) (string, error) {
	if hex, err := srgb.Parse(input); err == nil {
		before := t.adjuster.Config().Model.FromRGB(hex.Float())
		if after, err := t.adjuster.AdjustPoint(before); err == nil {
			t.log.Printf("%s -> %s", before, after)
		}
	}
	return t.adjuster.Adjust(input)
}
