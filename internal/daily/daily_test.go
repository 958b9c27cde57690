package daily

import (
	"testing"
	"time"
)

type fixedWords []string

func (f fixedWords) At(i int) string { return f[i] }
func (f fixedWords) Len() int         { return len(f) }

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	if got := DateKey(ts); got != "2026-03-01" {
		t.Fatalf("DateKey = %q, want 2026-03-01", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)
	a := WordIndex(day, "salt", 52)
	if b := WordIndex(later, "salt", 52); a != b {
		t.Fatalf("same day gave %d and %d", a, b)
	}
	if a < 0 || a >= 52 {
		t.Fatalf("index %d out of range", a)
	}
}

func TestWordIndexEmptyList(t *testing.T) {
	if got := WordIndex(time.Now(), "salt", 0); got != 0 {
		t.Fatalf("WordIndex with no words = %d, want 0", got)
	}
}

func TestWordIndexVariesAcrossDays(t *testing.T) {
	seen := map[int]bool{}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 30; d++ {
		seen[WordIndex(start.AddDate(0, 0, d), "salt", 1000)] = true
	}
	if len(seen) < 2 {
		t.Fatal("30 days all mapped to the same word")
	}
}

func TestPickerChoose(t *testing.T) {
	words := fixedWords{"snakes", "thanks", "granted", "awkward", "banjo"}
	day := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	p := &Picker{Words: words, Salt: "s", Now: func() time.Time { return day }}
	want := words[WordIndex(day, "s", len(words))]
	for i := 0; i < 3; i++ {
		if got := p.Choose(); got != want {
			t.Fatalf("Choose = %q, want %q", got, want)
		}
	}
}
