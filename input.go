package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandUndo
	CommandQuit
)

type Command struct {
	Kind     CommandKind
	Row, Col int
}

var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand reads "row col" (also "row,col"), "undo" or "quit".
// Coordinates are not range checked here; the board rejects them.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(strings.ToLower(line))
	switch line {
	case "u", "undo":
		return Command{Kind: CommandUndo}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}

	return Command{Kind: CommandMove, Row: row, Col: col}, nil
}
