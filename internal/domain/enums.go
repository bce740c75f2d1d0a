package domain

// Variant selects which unit set constrains the board.
type Variant int

const (
	Classic  Variant = iota // rows, columns, boxes
	Diagonal                // classic plus both main diagonals
)

func (v Variant) String() string {
	if v == Diagonal {
		return "diagonal"
	}
	return "classic"
}
