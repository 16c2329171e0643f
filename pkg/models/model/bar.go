package model

import (
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type Bar progressbar.ProgressBar

func NewBar(len int, description string) *Bar {
	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Goto(i int) {
	(*progressbar.ProgressBar)(b).Set(i)
}

func (b *Bar) Close() {
	(*progressbar.ProgressBar)(b).Finish()
	(*progressbar.ProgressBar)(b).Close()
}

// Countdown fills a bar in tenths of a second until the budget is used up
// or the returned stop function is called. stop blocks until the bar is
// closed.
func Countdown(budget time.Duration, description string) (stop func()) {
	steps := int(budget / (100 * time.Millisecond))
	if steps < 1 {
		steps = 1
	}

	bar := NewBar(steps, description)
	quit := make(chan struct{})
	done := make(chan struct{})
	start := time.Now()

	go func() {
		defer close(done)
		defer bar.Close()

		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				elapsed := int(time.Since(start) / (100 * time.Millisecond))
				if elapsed > steps {
					elapsed = steps
				}
				bar.Goto(elapsed)
			}
		}
	}()

	return func() {
		close(quit)
		<-done
	}
}
