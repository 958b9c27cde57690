// internal/words/words.go
//
// Provides the candidate word collection for the game.
//
// Responsibilities:
//   - Normalize candidate words (trim, lowercase, letters only, no duplicates).
//   - Supply a uniform random pick via Choose.
//   - Load the collection from a SQLite database, a word file, or the
//     embedded default list (see Load).
//
// Word Lists:
//   - One word per line in files; blank lines and '#' comments are skipped.
//   - A word is kept only if every rune is a letter.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
	"unicode"
)

// ErrEmptyList is returned when no usable word remains after normalization.
var ErrEmptyList = errors.New("words: word list is empty")

// Source picks the secret word for a new game.
type Source interface {
	Choose() string
}

// List is an immutable, normalized collection of candidate words.
type List struct {
	Origin string // where the words came from ("embedded", a file path, "sqlite:<path>")

	words []string
	set   map[string]struct{}
}

// New builds a List from raw words.
// Returns ErrEmptyList if nothing usable is left.
func New(raw []string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		w = normalize(w)
		if w == "" {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Choose returns a cryptographically random word from the list.
func (l *List) Choose() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[nBig.Int64()]
}

// At returns the i-th word; used by deterministic sources.
func (l *List) At(i int) string { return l.words[i] }

// Len returns the number of candidate words.
func (l *List) Len() int { return len(l.words) }

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// normalize lowercases and trims w, returning "" if w is not all letters.
func normalize(w string) string {
	w = strings.TrimSpace(strings.ToLower(w))
	if !isAlpha(w) {
		return ""
	}
	return w
}

// isAlpha reports whether s is non-empty and made only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
