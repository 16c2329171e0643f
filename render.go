package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/HuXin0817/othello/pkg/models/othello"
	"github.com/logrusorgru/aurora"
)

type Renderer struct {
	au aurora.Aurora
}

func NewRenderer(colors bool) Renderer {
	return Renderer{au: aurora.NewAurora(colors)}
}

// Render prints b with row-major coordinates and marks the legal moves of
// the side to move.
func (r Renderer) Render(w io.Writer, b *othello.Board) {
	legal := make(map[othello.Coord]bool)
	for _, m := range b.LegalMoves(b.SideToMove()) {
		legal[m.Coord] = true
	}

	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for i := range othello.Size {
		fmt.Fprintf(&sb, "%d", i)
		for j := range othello.Size {
			c, _ := othello.NewCoord(i, j)
			sb.WriteByte(' ')
			switch p := b.Cell(c); {
			case p == othello.Black:
				sb.WriteString(r.au.Bold(r.au.Cyan("B")).String())
			case p == othello.White:
				sb.WriteString(r.au.Bold(r.au.Yellow("W")).String())
			case legal[c]:
				sb.WriteString(r.au.Green("*").String())
			default:
				sb.WriteString(".")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Black %d  White %d  %s to move\n", b.DiscCount(othello.Black), b.DiscCount(othello.White), b.SideToMove())

	io.WriteString(w, sb.String())
}
