// Package main runs checkers on the text console.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"checkers/internal/cli"
	"checkers/internal/config"
	"checkers/internal/display"
	"checkers/internal/game"
	"checkers/internal/logging"
	clitransport "checkers/internal/transport/cli"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	urfave "github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	// .env is optional; values from it feed the CHECKERS_* flag variables
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	app := &urfave.App{
		Name:  "checkers",
		Usage: "play checkers on the text console",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:    "theme",
				Aliases: []string{"t"},
				Usage:   "board color theme: off, brown, green, gray",
				Value:   config.DefaultTheme,
				EnvVars: []string{"CHECKERS_THEME"},
			},
			&urfave.StringFlag{
				Name:    "log-level",
				Usage:   "log level: trace, debug, info, warn, error, disabled",
				Value:   config.DefaultLogLevel,
				EnvVars: []string{"CHECKERS_LOG_LEVEL"},
			},
			&urfave.StringFlag{
				Name:    "history-file",
				Usage:   "file to keep command history in (interactive mode only)",
				EnvVars: []string{"CHECKERS_HISTORY_FILE"},
			},
			&urfave.StringFlag{
				Name:    "prompt",
				Usage:   "prompt text",
				Value:   config.DefaultPrompt,
				EnvVars: []string{"CHECKERS_PROMPT"},
			},
			&urfave.BoolFlag{
				Name:    "plain",
				Usage:   "read plain lines even when attached to a terminal",
				EnvVars: []string{"CHECKERS_PLAIN"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", display.Paint(display.Red, err.Error(), !term.IsTerminal(int(os.Stderr.Fd()))))
		os.Exit(1)
	}
}

func run(cCtx *urfave.Context) error {
	cfg := config.Default()
	if cCtx.IsSet("theme") {
		cfg.Theme = cCtx.String("theme")
	}
	if cCtx.IsSet("log-level") {
		cfg.LogLevel = cCtx.String("log-level")
	}
	if cCtx.IsSet("prompt") {
		cfg.Prompt = cCtx.String("prompt")
	}
	cfg.HistoryFile = cCtx.String("history-file")
	cfg.Plain = cCtx.Bool("plain")
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.Configure(cfg.LogLevel, os.Stderr); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	logging.Debugf("config: %+v", cfg)

	interactive := !cfg.Plain && term.IsTerminal(int(os.Stdin.Fd()))

	var reader cli.LineReader
	if interactive {
		rl, err := cli.NewReadlineReader(display.Prompt(cfg.Prompt, cfg.Theme == config.DefaultTheme), cfg.HistoryFile)
		if err != nil {
			return err
		}
		reader = rl
	} else {
		reader = cli.NewScannerReader(os.Stdin)
	}

	view := cli.NewWithReader(reader, os.Stdout)
	defer func() {
		if err := view.Close(); err != nil {
			log.Debug().Err(err).Msg("failed to close input reader")
		}
	}()
	if err := view.SetTheme(cli.ColorTheme(cfg.Theme)); err != nil {
		return err
	}

	g := game.New()
	log.Info().Str("game", g.ID()).Bool("interactive", interactive).Msg("Game started")

	handler := clitransport.New(g, view, cfg.Prompt)
	if interactive {
		view.ShowWelcome()
	}
	return handler.Run() // All game loop logic is in the handler
}
