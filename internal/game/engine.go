// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Create new games for a secret word.
//   - Apply letter guesses, revealing matches or advancing the stage.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The number of stages comes from the stages package; the last stage
//     index is the loss condition.
//   - Words are compared rune by rune, case-sensitive, exactly as given.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"sort"

	"github.com/robalobadob/hangman/internal/stages"
)

// New constructs a new game for word.
// Returns ErrEmptyWord if word is empty.
func New(word string) (*Game, error) {
	return newWithStages(word, stages.Count)
}

func newWithStages(word string, n int) (*Game, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	w := []rune(word)
	letters := make(map[rune]struct{}, len(w))
	revealed := make([]rune, len(w))
	for i, r := range w {
		letters[r] = struct{}{}
		revealed[i] = Placeholder
	}
	return &Game{
		ID:       randomID(),
		word:     w,
		letters:  letters,
		guessed:  make(map[rune]struct{}, n),
		revealed: revealed,
		stages:   n,
	}, nil
}

// Guess applies a single letter guess and classifies it.
//
// Rules, first match wins:
//   - Game already finished → the outcome that finished it, nothing changes.
//   - Letter guessed before → AlreadyGuessed, nothing changes.
//   - Otherwise the letter is registered, then:
//     in the word → reveal every occurrence; Win if nothing is hidden, else CorrectContinue;
//     not in the word → stage+1; Lose on the final stage, else IncorrectContinue.
func (g *Game) Guess(c rune) Outcome {
	if g.won {
		return Win
	}
	if g.lost() {
		return Lose
	}
	if _, ok := g.guessed[c]; ok {
		return AlreadyGuessed
	}
	g.guessed[c] = struct{}{}

	if _, ok := g.letters[c]; ok {
		g.reveal(c)
		if g.solved() {
			g.won = true
			return Win
		}
		return CorrectContinue
	}

	g.stage++
	if g.lost() {
		return Lose
	}
	return IncorrectContinue
}

// reveal unmasks every position of c in the word.
func (g *Game) reveal(c rune) {
	for i, r := range g.word {
		if r == c {
			g.revealed[i] = c
		}
	}
}

// solved reports whether every position is revealed.
func (g *Game) solved() bool {
	for i, r := range g.word {
		if g.revealed[i] != r {
			return false
		}
	}
	return true
}

func (g *Game) lost() bool { return g.stage >= g.stages-1 }

// Stage returns the current stage index in [0, N-1].
func (g *Game) Stage() int { return g.stage }

// Revealed returns the word with unguessed letters masked by Placeholder.
func (g *Game) Revealed() string { return string(g.revealed) }

// Word returns the secret word.
func (g *Game) Word() string { return string(g.word) }

// Guessed returns every registered letter in ascending order.
func (g *Game) Guessed() []rune {
	out := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Misses is the number of distinct incorrect guesses so far.
func (g *Game) Misses() int { return g.stage }

// Remaining is how many more incorrect guesses lose the game.
func (g *Game) Remaining() int { return g.stages - 1 - g.stage }

// Finished reports whether the game has been won or lost.
func (g *Game) Finished() bool { return g.won || g.lost() }

// Won reports whether the game was finished with a win.
func (g *Game) Won() bool { return g.won }

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
