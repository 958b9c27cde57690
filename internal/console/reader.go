// internal/console/reader.go
//
// Line-oriented letter input.
// ReadLetter prompts, reads one line of any length and returns its first
// rune once that rune is a letter. Blank lines and lines starting with anything else are
// ignored and the prompt is shown again.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoInput is returned when input ends before a letter is read.
var ErrNoInput = errors.New("console: input closed before a letter was entered")

// DefaultPrompt is printed before every read.
const DefaultPrompt = "> "

// Reader reads guesses from a line-oriented stream.
type Reader struct {
	Prompt string

	in  *bufio.Reader
	out io.Writer
}

// NewReader reads lines from in and writes prompts to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{Prompt: DefaultPrompt, in: bufio.NewReader(in), out: out}
}

// ReadLetter blocks until a line starting with a letter is read.
// It never returns a non-letter rune.
func (r *Reader) ReadLetter() (rune, error) {
	for {
		fmt.Fprint(r.out, r.Prompt)
		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read guess: %w", err)
		}
		if c, _ := utf8.DecodeRuneInString(strings.TrimSpace(line)); unicode.IsLetter(c) {
			return c, nil
		}
		if err != nil {
			return 0, ErrNoInput
		}
	}
}
