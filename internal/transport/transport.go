package transport

import (
	"checkers/internal/board"
	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/game"
)

// Handler processes user commands independent of transport medium
type Handler interface {
	Run() error
	ProcessCommand(cmd *cli.Command, parseErr error) bool
}

// View abstracts display/output operations
type View interface {
	DisplayBoard(b *board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowUnsupported()
	ShowGameOver(state core.State)
	ShowPrompt(prompt string)
}

// Session is the game state a handler drives
type Session interface {
	ID() string
	Board() *board.Board
	NextTurn() core.Color
	MoveCount() int
	Move(from board.Index, tos []board.Index) (*game.MoveResult, error)
	Promote(idx board.Index) error
}

var (
	_ View    = (*cli.CLI)(nil)
	_ Session = (*game.Game)(nil)
)
