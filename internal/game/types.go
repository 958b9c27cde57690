// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Outcome: classification of a single letter guess.
//   - Game: state for a single in-progress or finished game.

package game

import "errors"

// ErrEmptyWord is returned by New when the secret word is empty.
var ErrEmptyWord = errors.New("game: secret word is empty")

// Outcome represents the result of guessing one letter.
// Possible values:
//   - "already_guessed": letter was tried before; nothing changed.
//   - "incorrect":       letter is not in the word; the drawing advanced.
//   - "correct":         letter is in the word; its positions are revealed.
//   - "win":             the last hidden letter was revealed.
//   - "lose":            the drawing reached its final stage.
type Outcome string

const (
	AlreadyGuessed    Outcome = "already_guessed"
	IncorrectContinue Outcome = "incorrect"
	CorrectContinue   Outcome = "correct"
	Win               Outcome = "win"
	Lose              Outcome = "lose"
)

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool { return o == Win || o == Lose }

func (o Outcome) String() string { return string(o) }

// Placeholder masks letters that have not been guessed yet.
const Placeholder = '_'

// Game holds the state of a single hangman game.
// It is owned by one driver and is not safe for concurrent use.
type Game struct {
	ID string // Unique game identifier (random hex string), used in logs.

	word     []rune            // secret word, as given
	letters  map[rune]struct{} // distinct letters of word
	guessed  map[rune]struct{} // every letter registered so far
	revealed []rune            // word with unguessed positions masked
	stage    int               // index into the stage table
	stages   int               // number of stages (N)
	won      bool
}
