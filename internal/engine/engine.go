// Package engine validates and applies checkers moves on a board.
//
// Every operation takes the board it works on; the engine holds no state.
// A rejected move leaves the board exactly as it was.
package engine

import (
	"checkers/internal/board"
	"checkers/internal/core"
)

// Shape classifies the displacement of a requested move
type Shape int

const (
	ShapeInvalid Shape = iota
	ShapeStep
	ShapeHop
)

func (s Shape) String() string {
	switch s {
	case ShapeStep:
		return "step"
	case ShapeHop:
		return "hop"
	default:
		return "invalid"
	}
}

// Result describes a completed move
type Result struct {
	Player   core.Color
	Path     []board.Index // origin followed by every landing square
	Captured []board.Index
}

// Classify returns the shape of the move from -> to
func Classify(from, to board.Index) Shape {
	dc, dr := from.Delta(to)
	switch {
	case abs(dc) == 1 && abs(dr) == 1:
		return ShapeStep
	case abs(dc) == 2 && abs(dr) == 2:
		return ShapeHop
	default:
		return ShapeInvalid
	}
}

// SelectOrigin returns the piece at idx if the player to move owns it
func SelectOrigin(b *board.Board, idx board.Index) (board.Piece, error) {
	p := b.Get(idx)
	if p.Empty() {
		return p, core.Errorf(core.CodeEmptySquare, "no piece at %s", idx)
	}
	if p.Color != b.Turn() {
		return p, core.Errorf(core.CodeWrongOwner, "not possible to control piece at %s, it is %s's turn", idx, b.Turn())
	}
	return p, nil
}

// SelectDestination checks that idx is free to land on
func SelectDestination(b *board.Board, idx board.Index) error {
	if !b.Get(idx).Empty() {
		return core.Errorf(core.CodeOccupiedDestination, "final square %s is not empty", idx)
	}
	return nil
}

// Forward reports whether a column displacement of dc moves p toward its
// promotion edge. White advances toward H, Black toward A.
func Forward(p board.Piece, dc int) bool {
	if p.Color == core.ColorBlack {
		return dc < 0
	}
	return dc > 0
}

func checkDirection(p board.Piece, from, to board.Index, verb string) error {
	dc, _ := from.Delta(to)
	if p.Rank == core.RankSingle && !Forward(p, dc) {
		return core.Errorf(core.CodeIllegalBackwardMove, "cannot %s backwards from %s to %s", verb, from, to)
	}
	return nil
}

// TryStep moves the piece at from one square diagonally to to
func TryStep(b *board.Board, from, to board.Index) error {
	p, err := SelectOrigin(b, from)
	if err != nil {
		return err
	}
	if Classify(from, to) != ShapeStep {
		return core.Errorf(core.CodeIllegalShape, "not possible to step from %s to %s", from, to)
	}
	if err := checkDirection(p, from, to, "step"); err != nil {
		return err
	}
	if err := SelectDestination(b, to); err != nil {
		return err
	}

	b.Set(to, p)
	b.Clear(from)
	return nil
}

// TryHop jumps the piece at from over an opposing piece to to and removes
// the jumped piece. It returns the captured square.
func TryHop(b *board.Board, from, to board.Index) (board.Index, error) {
	p, err := SelectOrigin(b, from)
	if err != nil {
		return board.Index{}, err
	}
	if Classify(from, to) != ShapeHop {
		return board.Index{}, core.Errorf(core.CodeIllegalShape, "not possible to hop from %s to %s", from, to)
	}
	if err := checkDirection(p, from, to, "hop"); err != nil {
		return board.Index{}, err
	}

	dc, dr := from.Delta(to)
	mid := from.Offset(dc/2, dr/2)
	jumped := b.Get(mid)
	switch {
	case jumped.Empty():
		return board.Index{}, core.Errorf(core.CodeNoCaptureTarget, "cannot hop from %s to %s, nothing at %s", from, to, mid)
	case jumped.Color == p.Color:
		return board.Index{}, core.Errorf(core.CodeCannotCaptureOwnPiece, "cannot hop from %s to %s over own piece at %s", from, to, mid)
	}

	if err := SelectDestination(b, to); err != nil {
		return board.Index{}, err
	}

	b.Clear(mid)
	b.Set(to, p)
	b.Clear(from)
	return mid, nil
}

// MoveSingle performs one step or one hop, whichever the displacement
// calls for, and hands the turn to the opponent
func MoveSingle(b *board.Board, from, to board.Index) (*Result, error) {
	player := b.Turn()
	if _, err := SelectOrigin(b, from); err != nil {
		return nil, err
	}

	result := &Result{Player: player, Path: []board.Index{from, to}}
	switch Classify(from, to) {
	case ShapeStep:
		if err := TryStep(b, from, to); err != nil {
			return nil, err
		}
	case ShapeHop:
		mid, err := TryHop(b, from, to)
		if err != nil {
			return nil, err
		}
		result.Captured = append(result.Captured, mid)
	default:
		return nil, core.Errorf(core.CodeIllegalShape, "not possible to move from %s to %s", from, to)
	}

	b.ToggleTurn()
	return result, nil
}

// MoveChain performs consecutive hops by one piece. The chain is applied to
// a copy and committed only when every hop succeeds, so a failure part way
// leaves the board untouched. The turn passes once at the end.
func MoveChain(b *board.Board, from board.Index, tos []board.Index) (*Result, error) {
	if len(tos) == 0 {
		return nil, core.Errorf(core.CodeMissingIndex, "no index to move to")
	}

	scratch := b.Clone()
	result := &Result{Player: b.Turn(), Path: []board.Index{from}}
	for _, to := range tos {
		mid, err := TryHop(scratch, from, to)
		if err != nil {
			return nil, err
		}
		result.Path = append(result.Path, to)
		result.Captured = append(result.Captured, mid)
		from = to
	}

	scratch.ToggleTurn()
	*b = *scratch
	return result, nil
}

// PromotionColumn is the far edge a single piece of color c must reach
func PromotionColumn(c core.Color) int {
	if c == core.ColorBlack {
		return 0
	}
	return board.Size - 1
}

// Promote turns the single piece at idx into a double. It does not use up
// the player's turn.
func Promote(b *board.Board, idx board.Index) error {
	p, err := SelectOrigin(b, idx)
	if err != nil {
		return err
	}
	if p.Rank == core.RankDouble {
		return core.Errorf(core.CodeAlreadyDouble, "unable to double a double at %s", idx)
	}
	if idx.Col != PromotionColumn(p.Color) {
		return core.Errorf(core.CodeNotOnPromotionRow, "unable to double in position %s", idx)
	}

	p.Rank = core.RankDouble
	b.Set(idx, p)
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
