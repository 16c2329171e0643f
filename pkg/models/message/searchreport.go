package message

import (
	"time"

	"github.com/bytedance/sonic"
)

// SearchReport summarises one completed iterative deepening depth.
type SearchReport struct {
	Depth   int
	Score   int
	Move    string
	PV      string
	Nodes   int64
	Elapsed time.Duration
	Exact   bool
}

func (r SearchReport) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
