// internal/play/play.go
//
// Driver loop for one game.
// Each turn: draw the board, read a letter, apply it to the game, report the
// outcome. The loop returns on the first terminal outcome (win or lose).

package play

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
)

// LetterReader supplies one letter per turn.
type LetterReader interface {
	ReadLetter() (rune, error)
}

// Display renders the board and guess outcomes.
type Display interface {
	Board(s console.State)
	Outcome(s console.State, o game.Outcome)
}

// Run plays g to completion and returns the terminal outcome.
// Input errors end the game early and are returned unchanged in the chain.
// A game that is already finished is returned as-is without reading input.
func Run(g *game.Game, in LetterReader, out Display) (game.Outcome, error) {
	if g.Finished() {
		return finalOutcome(g), nil
	}
	log.Debug().Str("gameId", g.ID).Int("length", len([]rune(g.Word()))).Msg("game started")
	for {
		out.Board(g)
		c, err := in.ReadLetter()
		if err != nil {
			return "", fmt.Errorf("game %s: %w", g.ID, err)
		}

		o := g.Guess(c)
		log.Debug().
			Str("gameId", g.ID).
			Str("letter", string(c)).
			Str("outcome", o.String()).
			Int("stage", g.Stage()).
			Msg("guess")
		out.Outcome(g, o)

		if o.Terminal() {
			log.Info().
				Str("gameId", g.ID).
				Bool("won", g.Won()).
				Int("misses", g.Misses()).
				Int("guesses", len(g.Guessed())).
				Msg("game finished")
			return o, nil
		}
	}
}

func finalOutcome(g *game.Game) game.Outcome {
	if g.Won() {
		return game.Win
	}
	return game.Lose
}
