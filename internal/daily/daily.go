// internal/daily/daily.go
//
// Word-of-the-day selection.
// Every run on the same UTC date with the same salt and word list gets the
// same secret word; the index is HMAC-SHA256(salt, YYYY-MM-DD) mod len(list).

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Words is the candidate list a Picker indexes into.
type Words interface {
	At(i int) string
	Len() int
}

// Picker is a word source that returns the word of the day.
type Picker struct {
	Words Words
	Salt  string
	Now   func() time.Time // defaults to time.Now
}

// Choose returns today's word.
func (p *Picker) Choose() string {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return p.Words.At(WordIndex(now(), p.Salt, p.Words.Len()))
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
