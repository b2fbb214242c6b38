package game

import (
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, s string) board.Index {
	t.Helper()
	i, err := board.ParseIndex(s)
	require.NoError(t, err)
	return i
}

func TestNewGame(t *testing.T) {
	g := New()
	_, err := uuid.Parse(g.ID())
	assert.NoError(t, err)
	assert.Equal(t, core.ColorWhite, g.NextTurn())
	assert.Equal(t, core.StateOngoing, g.State())
	assert.Nil(t, g.LastResult())
}

func TestMoveRecordsResult(t *testing.T) {
	g := New()

	res, err := g.Move(at(t, "C2"), []board.Index{at(t, "D3")})
	require.NoError(t, err)
	assert.Equal(t, "C2-D3", res.Move)
	assert.Equal(t, core.ColorWhite, res.Player)
	assert.Equal(t, 0, res.Captured)
	assert.Equal(t, 1, g.MoveCount())
	assert.Equal(t, core.ColorBlack, g.NextTurn())
	assert.Same(t, res, g.LastResult())

	_, err = g.Move(at(t, "D3"), []board.Index{at(t, "C2")})
	assert.ErrorIs(t, err, core.ErrWrongOwner)
	assert.Equal(t, 1, g.MoveCount())
	assert.Same(t, res, g.LastResult())
}

func TestMoveWithoutDestination(t *testing.T) {
	g := New()
	_, err := g.Move(at(t, "C2"), nil)
	assert.ErrorIs(t, err, core.ErrMissingIndex)
}

func TestChainCapturesLastPiece(t *testing.T) {
	b := board.Empty(core.ColorWhite)
	b.Set(at(t, "A2"), board.Piece{Color: core.ColorWhite, Rank: core.RankSingle})
	b.Set(at(t, "B3"), board.Piece{Color: core.ColorBlack, Rank: core.RankSingle})
	b.Set(at(t, "D5"), board.Piece{Color: core.ColorBlack, Rank: core.RankSingle})
	g := NewFromBoard(b)

	res, err := g.Move(at(t, "A2"), []board.Index{at(t, "C4"), at(t, "E6")})
	require.NoError(t, err)
	assert.Equal(t, "A2-C4-E6", res.Move)
	assert.Equal(t, 2, res.Captured)
	assert.Equal(t, core.StateWhiteWins, res.GameState)
	assert.Equal(t, core.StateWhiteWins, g.State())
}

func TestPromoteKeepsTurn(t *testing.T) {
	b := board.Empty(core.ColorWhite)
	b.Set(at(t, "H2"), board.Piece{Color: core.ColorWhite, Rank: core.RankSingle})
	g := NewFromBoard(b)

	require.NoError(t, g.Promote(at(t, "H2")))
	assert.Equal(t, core.RankDouble, g.Board().Get(at(t, "H2")).Rank)
	assert.Equal(t, core.ColorWhite, g.NextTurn())
	assert.Equal(t, 0, g.MoveCount())
	assert.ErrorIs(t, g.Promote(at(t, "H2")), core.ErrAlreadyDouble)
}
