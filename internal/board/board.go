package board

import (
	"checkers/internal/core"
)

// Piece occupies a square; the zero Piece means the square is empty
type Piece struct {
	Color core.Color
	Rank  core.Rank
}

func (p Piece) Empty() bool {
	return p == Piece{}
}

type Board struct {
	squares [Size][Size]Piece // [col][row]
	turn    core.Color
}

// New returns the starting layout: columns A-C hold White, F-H hold Black,
// every square whose row parity differs from its column parity, White to move.
func New() *Board {
	b := Empty(core.ColorWhite)
	for col := 0; col < Size; col++ {
		var color core.Color
		switch {
		case col <= 2:
			color = core.ColorWhite
		case col >= 5:
			color = core.ColorBlack
		default:
			continue
		}
		for row := 0; row < Size; row++ {
			if row%2 != col%2 {
				b.squares[col][row] = Piece{Color: color, Rank: core.RankSingle}
			}
		}
	}
	return b
}

// Empty returns a board without pieces
func Empty(turn core.Color) *Board {
	return &Board{turn: turn}
}

func (b *Board) Get(i Index) Piece {
	return b.squares[i.Col][i.Row]
}

func (b *Board) Set(i Index, p Piece) {
	b.squares[i.Col][i.Row] = p
}

func (b *Board) Clear(i Index) {
	b.squares[i.Col][i.Row] = Piece{}
}

func (b *Board) Turn() core.Color {
	return b.turn
}

func (b *Board) SetTurn(c core.Color) {
	b.turn = c
}

func (b *Board) ToggleTurn() {
	b.turn = b.turn.Opposite()
}

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Count returns the number of pieces of the given color
func (b *Board) Count(c core.Color) int {
	n := 0
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			if b.squares[col][row].Color == c {
				n++
			}
		}
	}
	return n
}
