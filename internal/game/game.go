package game

import (
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/engine"

	"github.com/google/uuid"
)

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      string
	Player    core.Color
	Captured  int
	GameState core.State
}

// Game is one session over a single board
type Game struct {
	id         string
	board      *board.Board
	state      core.State
	moves      int
	lastResult *MoveResult
}

func New() *Game {
	return NewFromBoard(board.New())
}

// NewFromBoard starts a session on an arbitrary position
func NewFromBoard(b *board.Board) *Game {
	return &Game{
		id:    uuid.New().String(),
		board: b,
		state: core.StateOngoing,
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) NextTurn() core.Color {
	return g.board.Turn()
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) MoveCount() int {
	return g.moves
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

// Move plays from -> tos[0]. With more than one destination every leg must
// be a hop.
func (g *Game) Move(from board.Index, tos []board.Index) (*MoveResult, error) {
	var (
		res *engine.Result
		err error
	)
	switch len(tos) {
	case 0:
		return nil, core.Errorf(core.CodeMissingIndex, "no index to move to")
	case 1:
		res, err = engine.MoveSingle(g.board, from, tos[0])
	default:
		res, err = engine.MoveChain(g.board, from, tos)
	}
	if err != nil {
		return nil, err
	}

	g.moves++
	if g.board.Count(res.Player.Opposite()) == 0 {
		g.state = core.WinState(res.Player)
	}

	result := &MoveResult{
		Move:      formatPath(res.Path),
		Player:    res.Player,
		Captured:  len(res.Captured),
		GameState: g.state,
	}
	g.lastResult = result
	return result, nil
}

// Promote doubles the piece at idx without ending the turn
func (g *Game) Promote(idx board.Index) error {
	return engine.Promote(g.board, idx)
}

func formatPath(path []board.Index) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = idx.String()
	}
	return strings.Join(parts, "-")
}
