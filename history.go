package main

import "github.com/HuXin0817/othello/pkg/models/othello"

// History keeps a snapshot of the board before every played move. Session
// undo restores these snapshots; it never touches the search undo tokens.
type History struct {
	snapshots []*othello.Board
}

func (h *History) Push(b *othello.Board) {
	h.snapshots = append(h.snapshots, b.Clone())
}

func (h *History) Pop() (*othello.Board, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, true
}

func (h *History) Len() int {
	return len(h.snapshots)
}
