package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/HuXin0817/othello/pkg/assess"
	"github.com/HuXin0817/othello/pkg/models/message"
	"github.com/HuXin0817/othello/pkg/models/model"
	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/zeromicro/go-zero/core/logx"
)

// Game is one terminal session. It owns the live board and the snapshot
// history; the controller only borrows the board during its turn.
type Game struct {
	ctx context.Context
	logx.Logger

	Uid     message.GameUid
	Board   *othello.Board
	History History

	ai         map[othello.Player]bool
	controller *assess.Controller
	recorder   *Recorder
	renderer   Renderer
	timeLimit  time.Duration
	countdown  bool
	out        io.Writer
}

func NewGame(ctx context.Context, c Config, uid message.GameUid, ai map[othello.Player]bool, recorder *Recorder, out io.Writer) *Game {
	timeLimit := c.TimeLimit
	if timeLimit <= 0 {
		timeLimit = assess.DefaultTimeLimit
	}

	return &Game{
		ctx:        ctx,
		Logger:     logx.WithContext(ctx),
		Uid:        uid,
		Board:      othello.NewBoard(),
		ai:         ai,
		controller: assess.NewController(ctx, c.ControllerOptions()...),
		recorder:   recorder,
		renderer:   NewRenderer(c.Colors),
		timeLimit:  timeLimit,
		countdown:  c.Countdown,
		out:        out,
	}
}

func (g *Game) Step() int {
	return g.History.Len()
}

// Play applies m for the side to move, pushes the previous board onto the
// history and records the move.
func (g *Game) Play(m othello.Move) error {
	before := g.Board.Clone()
	if _, err := g.Board.Apply(m); err != nil {
		return err
	}

	g.History.Push(before)
	g.Infof("step %d: %s plays %s, Black %d White %d",
		g.Step(), before.SideToMove(), m, g.Board.DiscCount(othello.Black), g.Board.DiscCount(othello.White))
	g.recorder.RecordMove(message.NewMovingInformation(g.Uid, g.Step(), before, m, g.Board))
	return nil
}

// Undo restores snapshots until a human can move again, skipping AI moves
// and forced passes. It reports false when there is nothing to undo.
func (g *Game) Undo() bool {
	b, ok := g.History.Pop()
	if !ok {
		return false
	}
	g.Board = b

	for g.History.Len() > 0 && !g.humanCanMove() {
		b, _ = g.History.Pop()
		g.Board = b
	}

	g.Infof("undo to step %d", g.Step())
	return true
}

func (g *Game) humanCanMove() bool {
	side := g.Board.SideToMove()
	return !g.ai[side] && g.Board.HasLegalMove(side)
}

// Run plays until the game is over, the input is exhausted, the player
// quits or the context is cancelled.
func (g *Game) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	g.recorder.RecordStart(g.ai[othello.Black], g.ai[othello.White], g.timeLimit)

	for !g.Board.IsTerminal() {
		if err := g.ctx.Err(); err != nil {
			return err
		}

		side := g.Board.SideToMove()
		if !g.Board.HasLegalMove(side) {
			fmt.Fprintf(g.out, "%s has no legal move and passes\n", side)
			if err := g.Play(othello.Pass); err != nil {
				return err
			}
			continue
		}

		g.renderer.Render(g.out, g.Board)

		if g.ai[side] {
			if err := g.aiTurn(); err != nil {
				return err
			}
			continue
		}

		quit, err := g.humanTurn(scanner)
		if err != nil || quit {
			return err
		}
	}

	g.renderer.Render(g.out, g.Board)
	g.finish()
	return nil
}

func (g *Game) aiTurn() error {
	side := g.Board.SideToMove()
	deadline := time.Now().Add(g.timeLimit)

	var stop func()
	if g.countdown {
		stop = model.Countdown(g.timeLimit, fmt.Sprintf("%s thinking", side))
	}
	m, err := g.controller.ChooseMove(g.Board, deadline)
	if stop != nil {
		stop()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(g.out, "%s plays %s\n", side, m)
	if err := g.Play(m); err != nil {
		panic(fmt.Sprintf("controller chose a move the board rejects: %v", err))
	}
	return nil
}

// humanTurn reads commands until one changes the board. quit is true when
// the player leaves or the input ends.
func (g *Game) humanTurn(scanner *bufio.Scanner) (quit bool, err error) {
	side := g.Board.SideToMove()
	for {
		fmt.Fprintf(g.out, "%s> ", side)
		if !scanner.Scan() {
			return true, scanner.Err()
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(g.out, "enter \"row col\", \"undo\" or \"quit\"")
			continue
		}

		switch cmd.Kind {
		case CommandQuit:
			return true, nil
		case CommandUndo:
			if !g.Undo() {
				fmt.Fprintln(g.out, "nothing to undo")
				continue
			}
			return false, nil
		}

		m, err := g.Board.MoveAt(cmd.Row, cmd.Col)
		if err != nil {
			fmt.Fprintln(g.out, err)
			continue
		}
		if err := g.Play(m); err != nil {
			fmt.Fprintln(g.out, err)
			continue
		}
		return false, nil
	}
}

func (g *Game) finish() {
	black, white := g.Board.DiscCount(othello.Black), g.Board.DiscCount(othello.White)
	switch winner := g.Board.Winner(); winner {
	case othello.Draw:
		fmt.Fprintf(g.out, "Black %d : White %d, draw\n", black, white)
	default:
		fmt.Fprintf(g.out, "Black %d : White %d, %s wins\n", black, white, winner)
	}
	g.recorder.RecordEnd(g.Board)
}
