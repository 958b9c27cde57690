// internal/console/render.go
//
// Renderer writes the game screen: the stage picture, the reveal pattern,
// the letters tried so far and one message per guess outcome.

package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stages"
)

// State is the read-only view of a game the renderer needs.
type State interface {
	Stage() int
	Revealed() string
	Word() string
	Guessed() []rune
	Remaining() int
}

// Renderer writes game output to w.
type Renderer struct {
	w io.Writer

	pattern *color.Color
	good    *color.Color
	bad     *color.Color
	warn    *color.Color
	dim     *color.Color
}

// NewRenderer returns a Renderer writing to w; colors are only emitted when useColor is set.
func NewRenderer(w io.Writer, useColor bool) *Renderer {
	r := &Renderer{
		w:       w,
		pattern: color.New(color.Bold),
		good:    color.New(color.FgGreen, color.Bold),
		bad:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow),
		dim:     color.New(color.Faint),
	}
	if useColor {
		for _, c := range []*color.Color{r.pattern, r.good, r.bad, r.warn, r.dim} {
			c.EnableColor()
		}
	} else {
		for _, c := range []*color.Color{r.pattern, r.good, r.bad, r.warn, r.dim} {
			c.DisableColor()
		}
	}
	return r
}

// Board draws the current stage, the pattern and the guess prompt.
func (r *Renderer) Board(s State) {
	fmt.Fprintln(r.w, stages.Picture(s.Stage()))
	r.pattern.Fprintln(r.w, s.Revealed())
	if g := s.Guessed(); len(g) > 0 {
		r.dim.Fprintf(r.w, "Guessed: %s\n", spaced(g))
	}
	fmt.Fprintln(r.w, "Make a guess!")
}

// Outcome reports the result of the last guess.
func (r *Renderer) Outcome(s State, o game.Outcome) {
	switch o {
	case game.AlreadyGuessed:
		r.warn.Fprintln(r.w, "You already guessed that!")
	case game.IncorrectContinue:
		r.bad.Fprintf(r.w, "Incorrect (%d left)\n", s.Remaining())
	case game.CorrectContinue:
		r.good.Fprintln(r.w, "Correct!")
		r.pattern.Fprintln(r.w, s.Revealed())
	case game.Win:
		r.good.Fprintf(r.w, "You win! The word was '%s'.\n", s.Word())
	case game.Lose:
		fmt.Fprintln(r.w, stages.Picture(s.Stage()))
		r.bad.Fprintf(r.w, "You lose! The word was '%s'.\n", s.Word())
	}
}

func spaced(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
