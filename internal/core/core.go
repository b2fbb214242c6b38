package core

type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
)

func (s State) String() string {
	switch s {
	case StateWhiteWins:
		return "White wins"
	case StateBlackWins:
		return "Black wins"
	default:
		return "Ongoing"
	}
}

// WinState returns the end state in which c has won
func WinState(c Color) State {
	if c == ColorWhite {
		return StateWhiteWins
	}
	return StateBlackWins
}

type Color byte

const (
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return "-"
	}
}

func (c Color) Opposite() Color {
	return OppositeColor(c)
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// Rank of a piece: a single piece moves forward only, a double piece both ways
type Rank byte

const (
	RankSingle Rank = iota + 1
	RankDouble
)

func (r Rank) String() string {
	switch r {
	case RankSingle:
		return "single"
	case RankDouble:
		return "double"
	default:
		return "-"
	}
}
