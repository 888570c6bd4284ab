package sink

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cella/grid"
)

// Default glyphs for terminal rendering.
const (
	// DefaultAliveChar marks cells at or above the threshold.
	DefaultAliveChar = '█'
	// DefaultDeadChar marks cells below the threshold.
	DefaultDeadChar = ' '
)

// ansiHome clears the terminal and moves the cursor to the top-left corner.
const ansiHome = "\x1b[2J\x1b[H"

// Terminal renders each pushed frame as block art to an io.Writer, and also
// stores frames so a run on a terminal sink can still be resumed.
//
// Cells with value ≥ Threshold render as Alive, all others as Dead.
type Terminal struct {
	State
	w         io.Writer
	threshold float64
	alive     rune
	dead      rune
	clear     bool
}

// NewTerminal returns a Terminal sink writing to w with threshold 0.5 and
// the default glyphs. Panics on a nil writer.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		panic("sink: NewTerminal(nil)")
	}

	return &Terminal{w: w, threshold: 0.5, alive: DefaultAliveChar, dead: DefaultDeadChar}
}

// WithThreshold sets the alive threshold and returns the sink for chaining.
func (t *Terminal) WithThreshold(v float64) *Terminal {
	t.threshold = v

	return t
}

// WithGlyphs sets the alive and dead glyphs and returns the sink.
func (t *Terminal) WithGlyphs(alive, dead rune) *Terminal {
	t.alive, t.dead = alive, dead

	return t
}

// WithClear makes every frame clear the screen first (animation mode) and
// returns the sink.
func (t *Terminal) WithClear() *Terminal {
	t.clear = true

	return t
}

// PushFrame stores the frame and renders it.
// Render errors are returned to the driver and abort the run.
func (t *Terminal) PushFrame(g *grid.Grid, tm float64) error {
	t.store(g, tm)

	var b strings.Builder
	if t.clear {
		b.WriteString(ansiHome)
	}
	fmt.Fprintf(&b, "t=%g frame=%d\n", tm, t.Len()-1)
	var x, y int
	for y = 0; y < g.Height(); y++ {
		row := g.Row(y)
		for x = 0; x < g.Width(); x++ {
			if row[x] >= t.threshold {
				b.WriteRune(t.alive)
			} else {
				b.WriteRune(t.dead)
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(t.w, b.String())

	return err
}

// Compile-time assertion: *Terminal satisfies the Sink contract.
var _ Sink = (*Terminal)(nil)
