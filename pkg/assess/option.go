package assess

import "time"

const (
	DefaultTimeLimit       = 30 * time.Second
	DefaultSafetyMargin    = 300 * time.Millisecond
	DefaultNextDepthFactor = 1.5
)

type Option func(*Controller)

func WithEvaluator(e Evaluator) Option {
	return func(c *Controller) {
		c.engine.Evaluator = e
	}
}

// WithSafetyMargin reserves time after the search for applying and
// rendering the move.
func WithSafetyMargin(d time.Duration) Option {
	return func(c *Controller) {
		c.safetyMargin = d
	}
}

// WithMaxDepth caps iterative deepening. Zero means no cap.
func WithMaxDepth(depth int) Option {
	return func(c *Controller) {
		c.maxDepth = depth
	}
}

// WithNextDepthFactor sets how many times the previous depth's duration has
// to remain before a deeper search is started.
func WithNextDepthFactor(f float64) Option {
	return func(c *Controller) {
		c.nextDepthFactor = f
	}
}

func WithCheckInterval(nodes int64) Option {
	return func(c *Controller) {
		c.engine.CheckInterval = nodes
	}
}
