package board

import (
	"strings"

	"checkers/internal/core"
)

const (
	Size = 8

	columnLetters = "ABCDEFGH"
	rowDigits     = "12345678"
)

// Index addresses a square. Col follows the letter A-H, Row the digit 1-8,
// both zero based.
type Index struct {
	Col int
	Row int
}

// ParseIndex reads a two character coordinate such as "c2" or " D 3 ".
// Case and whitespace are ignored.
func ParseIndex(text string) (Index, error) {
	stripped := strings.Join(strings.Fields(strings.ToUpper(text)), "")
	if len(stripped) != 2 {
		return Index{}, core.Errorf(core.CodeInvalidFormat, "index must be two characters, got %q", strings.TrimSpace(text))
	}

	col := strings.IndexByte(columnLetters, stripped[0])
	if col < 0 {
		return Index{}, core.Errorf(core.CodeInvalidColumn, "incorrect column %q in %s", stripped[0], stripped)
	}
	row := strings.IndexByte(rowDigits, stripped[1])
	if row < 0 {
		return Index{}, core.Errorf(core.CodeInvalidRow, "incorrect row %q in %s", stripped[1], stripped)
	}

	return Index{Col: col, Row: row}, nil
}

func (i Index) String() string {
	if !i.Valid() {
		return "??"
	}
	return string([]byte{columnLetters[i.Col], rowDigits[i.Row]})
}

func (i Index) Valid() bool {
	return i.Col >= 0 && i.Col < Size && i.Row >= 0 && i.Row < Size
}

// Offset returns the index displaced by (dc, dr); the result may be off board
func (i Index) Offset(dc, dr int) Index {
	return Index{Col: i.Col + dc, Row: i.Row + dr}
}

// Delta is the displacement from i to to
func (i Index) Delta(to Index) (dc, dr int) {
	return to.Col - i.Col, to.Row - i.Row
}
