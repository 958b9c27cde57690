package words

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
)

// Options selects where Load reads candidate words from.
type Options struct {
	DB     *sql.DB // word database (takes precedence when set)
	DBName string  // label for DB in List.Origin
	File   string  // word file, one per line
}

// Load builds the candidate list.
//
// Precedence:
//   1. opts.DB   → words table of the SQLite database.
//   2. opts.File → the file, one word per line.
//   3. otherwise → the embedded default list.
func Load(ctx context.Context, opts Options) (*List, error) {
	var (
		raw    []string
		origin string
		err    error
	)
	switch {
	case opts.DB != nil:
		origin = "sqlite:" + opts.DBName
		raw, err = readDB(ctx, opts.DB)
	case opts.File != "":
		origin = opts.File
		raw, err = readWordFile(opts.File)
	default:
		origin = "embedded"
		raw, err = assets.WordList()
	}
	if err != nil {
		return nil, fmt.Errorf("load words from %s: %w", origin, err)
	}

	l, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("load words from %s: %w", origin, err)
	}
	l.Origin = origin
	if dropped := len(raw) - l.Len(); dropped > 0 {
		log.Debug().Str("source", origin).Int("dropped", dropped).Msg("skipped unusable or duplicate words")
	}
	return l, nil
}
