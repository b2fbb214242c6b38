package cli

import (
	"fmt"

	"checkers/internal/cli"
	"checkers/internal/core"
	"checkers/internal/display"
	"checkers/internal/transport"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var _ transport.Handler = (*CLIHandler)(nil)

type CLIHandler struct {
	game   transport.Session
	view   *cli.CLI
	prompt string
	plain  bool
	logger zerolog.Logger
}

func New(g transport.Session, view *cli.CLI, prompt string) *CLIHandler {
	return &CLIHandler{
		game:   g,
		view:   view,
		prompt: prompt,
		plain:  view.Theme() == cli.ThemeOff,
		logger: log.With().Str("game", g.ID()).Logger(),
	}
}

// Run shows the board and processes commands until quit or end of input.
// Only a failing reader ends it with an error.
func (h *CLIHandler) Run() error {
	h.view.DisplayBoard(h.game.Board())
	for {
		h.view.ShowPrompt(h.getPrompt())

		cmd, err := h.view.GetCommand()
		if err != nil && cmd == nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		// Process command - returns false to exit
		if !h.ProcessCommand(cmd, err) {
			return nil
		}
	}
}

// Generates the prompt showing whose turn it is
func (h *CLIHandler) getPrompt() string {
	turn := display.ColorForTurn(h.game.NextTurn().String(), h.plain)
	return fmt.Sprintf("[%s] %s", turn, display.Prompt(h.prompt, h.plain))
}

// ProcessCommand handles one parsed line; parseErr is the error that came
// with it. Returns false to exit.
func (h *CLIHandler) ProcessCommand(cmd *cli.Command, parseErr error) bool {
	h.logger.Debug().
		Str("type", cmd.Type.String()).
		Str("raw", cmd.Raw).
		Msg("command received")

	if parseErr != nil {
		h.logger.Debug().Err(parseErr).Msg("command rejected by parser")
		h.view.ShowError(parseErr)
		return true
	}

	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdMove:
		h.logger.Debug().
			Stringer("from", cmd.From).
			Interface("to", cmd.To).
			Msg("parsed move")

		result, err := h.game.Move(cmd.From, cmd.To)
		if err != nil {
			h.view.ShowError(err)
			return true
		}

		h.logger.Info().
			Str("move", result.Move).
			Stringer("player", result.Player).
			Int("captured", result.Captured).
			Int("moves", h.game.MoveCount()).
			Msg("move applied")

		h.view.DisplayBoard(h.game.Board())
		if result.GameState != core.StateOngoing {
			h.view.ShowGameOver(result.GameState)
		}

	case cli.CmdDouble:
		h.logger.Debug().Stringer("index", cmd.From).Msg("parsed double")

		if err := h.game.Promote(cmd.From); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.logger.Info().Stringer("index", cmd.From).Msg("piece doubled")
		h.view.DisplayBoard(h.game.Board())

	default:
		h.view.ShowUnsupported()
	}

	return true
}
