package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"checkers/internal/board"
	"checkers/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	cmd, err := ParseCommand("move c2 to d3")
	require.NoError(t, err)
	assert.Equal(t, CmdMove, cmd.Type)
	assert.Equal(t, board.Index{Col: 2, Row: 1}, cmd.From)
	assert.Equal(t, []board.Index{{Col: 3, Row: 2}}, cmd.To)
}

func TestParseMoveChain(t *testing.T) {
	cmd, err := ParseCommand("  MOVE A2 TO c4 Then E6\r\n")
	require.NoError(t, err)
	assert.Equal(t, CmdMove, cmd.Type)
	assert.Equal(t, board.Index{Col: 0, Row: 1}, cmd.From)
	assert.Equal(t, []board.Index{{Col: 2, Row: 3}, {Col: 4, Row: 5}}, cmd.To)
}

func TestParseMoveErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"move", core.ErrInvalidFormat},
		{"move c2", core.ErrMissingIndex},
		{"move c2 to", core.ErrInvalidFormat},
		{"move z2 to d3", core.ErrInvalidColumn},
		{"move c2 to d9", core.ErrInvalidRow},
		{"move c2 to d3 then", core.ErrInvalidFormat},
		{"move c2 to d3 to e4", core.ErrInvalidFormat},
	}
	for _, tt := range tests {
		cmd, err := ParseCommand(tt.in)
		require.Error(t, err, tt.in)
		assert.Equal(t, CmdMove, cmd.Type, tt.in)
		assert.True(t, errors.Is(err, tt.want), "%q: got %v", tt.in, err)
	}
}

func TestParseDouble(t *testing.T) {
	cmd, err := ParseCommand("double h1")
	require.NoError(t, err)
	assert.Equal(t, CmdDouble, cmd.Type)
	assert.Equal(t, board.Index{Col: 7, Row: 0}, cmd.From)

	cmd, err = ParseCommand("double")
	assert.ErrorIs(t, err, core.ErrInvalidFormat)
	assert.Equal(t, CmdDouble, cmd.Type)
}

func TestParseOther(t *testing.T) {
	tests := []struct {
		in   string
		want CommandType
	}{
		{"q", CmdQuit},
		{"Q", CmdQuit},
		{"quit", CmdQuit},
		{"", CmdNone},
		{"   ", CmdNone},
		{"jump c2", CmdUnknown},
		{"help", CmdUnknown},
	}
	for _, tt := range tests {
		cmd, err := ParseCommand(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, cmd.Type, tt.in)
	}
}

func TestGetCommandEOF(t *testing.T) {
	c := New(strings.NewReader("move c2 to d3\n"), &bytes.Buffer{})

	cmd, err := c.GetCommand()
	require.NoError(t, err)
	assert.Equal(t, CmdMove, cmd.Type)

	cmd, err = c.GetCommand()
	require.NoError(t, err)
	assert.Equal(t, CmdQuit, cmd.Type)
}

func TestDisplayBoard(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	b := board.New()

	c.DisplayBoard(b)
	assert.Equal(t, board.Render(b)+"\n", out.String())

	out.Reset()
	require.NoError(t, c.SetTheme(ThemeGreen))
	c.DisplayBoard(b)
	assert.Contains(t, out.String(), "\033[48;5;22m\033[97m o \033[0m")
	assert.NotContains(t, out.String(), "░")

	assert.Error(t, c.SetTheme("purple"))
	assert.Equal(t, ThemeGreen, c.Theme())
}

func TestShowError(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)
	c.ShowError(core.ErrAlreadyDouble)
	c.ShowUnsupported()
	assert.Equal(t, "Error: unable to double a double\nCommand Not Yet Supported\n", out.String())
}

func TestScannerReaderLongAndUnterminatedLines(t *testing.T) {
	long := "move " + strings.Repeat(" ", 100000) + "c2 to d3"
	r := NewScannerReader(strings.NewReader(long + "\r\nq"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, long, line)

	cmd, err := ParseCommand(line)
	require.NoError(t, err)
	assert.Equal(t, board.Index{Col: 2, Row: 1}, cmd.From)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "q", line)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}
