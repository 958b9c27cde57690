package words

import (
	"context"
	"database/sql"
)

// readDB reads every row of the words table.
//
// Expected schema:
//
//	CREATE TABLE words (word TEXT NOT NULL);
func readDB(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT word FROM words ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
