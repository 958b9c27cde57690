package stages

import (
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	if Count != 7 {
		t.Fatalf("Count = %d, want 7", Count)
	}
}

func TestPictureClamps(t *testing.T) {
	if Picture(-3) != Picture(0) {
		t.Error("negative index should clamp to the first stage")
	}
	if Picture(Count+5) != Picture(Count-1) {
		t.Error("large index should clamp to the last stage")
	}
}

func TestPicturesDistinct(t *testing.T) {
	lines := strings.Count(Picture(0), "\n")
	for i := 1; i < Count; i++ {
		if Picture(i) == Picture(i-1) {
			t.Errorf("stage %d is identical to stage %d", i, i-1)
		}
		if n := strings.Count(Picture(i), "\n"); n != lines {
			t.Errorf("stage %d has %d lines, want %d", i, n, lines)
		}
	}
}
