// internal/stages/stages.go
//
// Stage table for the hangman drawing.
// Each incorrect guess moves the game one stage forward; the last stage
// (Count-1) is the fully drawn man and means the game is lost.
//
// The pictures are display payload only. Game logic depends on Count.

package stages

// Count is the number of stages, including the empty gallows.
const Count = len(pictures)

var pictures = [...]string{
	`
|-----|
|
|
|
|_______
`,
	`
|-----|
|     o
|
|
|_______
`,
	`
|-----|
|     o
|     |
|
|_______
`,
	`
|-----|
|     o
|     |
|    /
|_______
`,
	`
|-----|
|     o
|     |
|    / \
|_______
`,
	`
|-----|
|     o
|    /|
|    / \
|_______
`,
	`
|-----|
|     o
|    /|\
|    / \
|_______
`,
}

// Picture returns the drawing for stage index.
// Out-of-range indexes are clamped to the first or last stage.
func Picture(index int) string {
	switch {
	case index < 0:
		index = 0
	case index >= Count:
		index = Count - 1
	}
	return pictures[index]
}
