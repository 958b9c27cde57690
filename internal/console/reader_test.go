package console

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReadLetter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rune
		prompts int
	}{
		{"single letter", "a\n", 'a', 1},
		{"first rune of a word", "zebra\n", 'z', 1},
		{"surrounding space", "   q  \n", 'q', 1},
		{"skips blank lines", "\n\n\nk\n", 'k', 4},
		{"skips digits and symbols", "7\n?\n-x\nm\n", 'm', 4},
		{"keeps case", "G\n", 'G', 1},
		{"unicode letter", "é\n", 'é', 1},
		{"no trailing newline", "w", 'w', 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			r := NewReader(strings.NewReader(tt.input), &out)
			got, err := r.ReadLetter()
			if err != nil {
				t.Fatalf("ReadLetter: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if n := strings.Count(out.String(), DefaultPrompt); n != tt.prompts {
				t.Errorf("prompted %d times, want %d", n, tt.prompts)
			}
		})
	}
}

func TestReadLetterSequence(t *testing.T) {
	var out strings.Builder
	r := NewReader(strings.NewReader("c\n1\na\nt\n"), &out)
	var got []rune
	for i := 0; i < 3; i++ {
		c, err := r.ReadLetter()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, c)
	}
	if string(got) != "cat" {
		t.Fatalf("got %q, want %q", string(got), "cat")
	}
}

func TestReadLetterLongLines(t *testing.T) {
	input := "a" + strings.Repeat("b", 70000) + "\n" + strings.Repeat("9", 70000) + "\nc\n"
	var out strings.Builder
	r := NewReader(strings.NewReader(input), &out)
	for _, want := range "ac" {
		got, err := r.ReadLetter()
		if err != nil {
			t.Fatalf("ReadLetter: %v", err)
		}
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
	if n := strings.Count(out.String(), DefaultPrompt); n != 3 {
		t.Errorf("prompted %d times, want 3", n)
	}
}

func TestReadLetterEOF(t *testing.T) {
	var out strings.Builder
	r := NewReader(strings.NewReader("1\n\n"), &out)
	if _, err := r.ReadLetter(); !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
}

func TestReadLetterReadError(t *testing.T) {
	boom := errors.New("boom")
	var out strings.Builder
	r := NewReader(iotest.ErrReader(boom), &out)
	if _, err := r.ReadLetter(); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}
