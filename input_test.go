package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"2 3", Command{Kind: CommandMove, Row: 2, Col: 3}},
		{"  5,4 ", Command{Kind: CommandMove, Row: 5, Col: 4}},
		{"9 9", Command{Kind: CommandMove, Row: 9, Col: 9}},
		{"undo", Command{Kind: CommandUndo}},
		{"U", Command{Kind: CommandUndo}},
		{"quit", Command{Kind: CommandQuit}},
		{"exit", Command{Kind: CommandQuit}},
	}

	for _, c := range cases {
		got, err := ParseCommand(c.line)
		require.NoError(t, err, c.line)
		assert.Equal(t, c.want, got, c.line)
	}

	for _, line := range []string{"", "3", "a b", "1 2 3", "d3"} {
		_, err := ParseCommand(line)
		assert.ErrorIs(t, err, ErrUnknownCommand, line)
	}
}
