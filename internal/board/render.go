package board

import (
	"strings"

	"checkers/internal/core"
)

const (
	gridTop    = "┌───┬───┬───┬───┬───┬───┬───┬───┬───┐\n"
	gridMiddle = "\n├───┼───┼───┼───┼───┼───┼───┼───┼───┤\n"
	gridBottom = "\n└───┼───┼───┼───┼───┼───┼───┼───┼───┤\n" +
		"    │ 1 │ 2 │ 3 │ 4 │ 5 │ 6 │ 7 │ 8 │\n" +
		"    └───┴───┴───┴───┴───┴───┴───┴───┘"
)

// GlyphFunc draws one three character cell
type GlyphFunc func(p Piece, shaded bool) string

// Render draws the board as a bordered grid. Each line is one column letter
// A-H with its eight rows left to right.
func Render(b *Board) string {
	return RenderWith(b, Glyph)
}

// RenderWith draws the grid using glyph for every cell
func RenderWith(b *Board, glyph GlyphFunc) string {
	lines := make([]string, 0, Size)
	for col := 0; col < Size; col++ {
		var sb strings.Builder
		sb.WriteString("│ ")
		sb.WriteByte(columnLetters[col])
		sb.WriteString(" │")
		for row := 0; row < Size; row++ {
			sb.WriteString(glyph(b.squares[col][row], Shaded(col, row)))
			sb.WriteString("│")
		}
		lines = append(lines, sb.String())
	}
	return gridTop + strings.Join(lines, gridMiddle) + gridBottom
}

func Shaded(col, row int) bool {
	return (row%2 == 0) != (col%2 == 0)
}

// Glyph returns the three character cell for a square
func Glyph(p Piece, shaded bool) string {
	pad := " "
	if shaded {
		pad = "░"
	}
	sym := Symbol(p)
	if sym == "" {
		sym = pad
	}
	return pad + sym + pad
}

// Symbol is the one letter mark of a piece, empty for an empty square
func Symbol(p Piece) string {
	switch p.Color {
	case core.ColorWhite:
		switch p.Rank {
		case core.RankSingle:
			return "o"
		case core.RankDouble:
			return "O"
		}
	case core.ColorBlack:
		switch p.Rank {
		case core.RankSingle:
			return "x"
		case core.RankDouble:
			return "X"
		}
	}
	return ""
}
