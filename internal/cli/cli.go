package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"checkers/internal/board"
	"checkers/internal/core"
	"checkers/internal/display"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdDouble
	CmdQuit
	CmdUnknown
)

func (t CommandType) String() string {
	switch t {
	case CmdMove:
		return "move"
	case CmdDouble:
		return "double"
	case CmdQuit:
		return "quit"
	case CmdUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// Command is one parsed input line. From and To are set for moves, From
// alone for double.
type Command struct {
	Type CommandType
	From board.Index
	To   []board.Index
	Raw  string
}

const UnsupportedMessage = "Command Not Yet Supported"

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

type CLI struct {
	input  LineReader
	output io.Writer
	theme  ColorTheme
}

// New reads plain lines from input
func New(input io.Reader, output io.Writer) *CLI {
	return NewWithReader(NewScannerReader(input), output)
}

func NewWithReader(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// GetCommand reads and parses the next line. End of input reads as quit.
// Parse failures come back together with the command type they belong to.
func (c *CLI) GetCommand() (*Command, error) {
	line, err := c.input.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Command{Type: CmdQuit}, nil
		}
		return nil, err
	}
	return ParseCommand(line)
}

// ParseCommand recognises
//
//	move <from> to <to>[ then <to>...]
//	double <index>
//	q
//
// Keywords and coordinates are case-insensitive.
func ParseCommand(line string) (*Command, error) {
	input := strings.TrimSpace(strings.TrimRight(line, "\r\n"))
	lower := strings.ToLower(input)

	switch {
	case input == "":
		return &Command{Type: CmdNone}, nil
	case lower == "q" || lower == "quit" || lower == "exit":
		return &Command{Type: CmdQuit, Raw: input}, nil
	case strings.HasPrefix(lower, "move"):
		cmd := &Command{Type: CmdMove, Raw: input}
		return cmd, parseMove(cmd, lower[len("move"):])
	case strings.HasPrefix(lower, "double"):
		cmd := &Command{Type: CmdDouble, Raw: input}
		idx, err := board.ParseIndex(lower[len("double"):])
		cmd.From = idx
		return cmd, err
	default:
		return &Command{Type: CmdUnknown, Raw: input}, nil
	}
}

func parseMove(cmd *Command, args string) error {
	parts := strings.SplitN(args, "to", 2)

	from, err := board.ParseIndex(parts[0])
	if err != nil {
		return err
	}
	cmd.From = from

	if len(parts) < 2 {
		return core.Errorf(core.CodeMissingIndex, "no index to move to")
	}
	for _, tok := range strings.Split(parts[1], "then") {
		to, err := board.ParseIndex(tok)
		if err != nil {
			return err
		}
		cmd.To = append(cmd.To, to)
	}
	return nil
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) Theme() ColorTheme {
	return c.theme
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (c *CLI) ShowUnsupported() {
	c.ShowMessage(UnsupportedMessage)
}

// ShowPrompt hands the prompt to the line reader; plain readers ignore it
func (c *CLI) ShowPrompt(prompt string) {
	c.input.SetPrompt(prompt)
}

func (c *CLI) DisplayBoard(b *board.Board) {
	if c.theme == ThemeOff {
		c.ShowMessage(board.Render(b))
		return
	}
	c.ShowMessage(board.RenderWith(b, themedGlyph(themes[c.theme])))
}

func themedGlyph(theme themeColors) board.GlyphFunc {
	return func(p board.Piece, shaded bool) string {
		bg := theme.lightBg
		if shaded {
			bg = theme.darkBg
		}
		if p.Empty() {
			return bg + "   " + theme.reset
		}
		fg := theme.black
		if p.Color == core.ColorWhite {
			fg = theme.white
		}
		return bg + fg + " " + board.Symbol(p) + " " + theme.reset
	}
}

func (c *CLI) ShowGameOver(state core.State) {
	c.ShowMessage(fmt.Sprintf("Game Over: %s", state))
}

func (c *CLI) ShowWelcome() {
	plain := c.theme == ThemeOff
	c.ShowMessage(display.Paint(display.Cyan, "Welcome to Checkers!", plain))
	c.ShowMessage("Commands: move <from> to <to>[ then <to>...], double <index>, q")
	c.ShowMessage("Example: 'move C2 to D3'. White (o) moves toward H, Black (x) toward A.")
	c.ShowMessage("")
}

func (c *CLI) Close() error {
	return c.input.Close()
}
