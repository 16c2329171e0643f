package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, once per
// PushInterval and once more on Stop.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	stop           chan struct{}
	done           chan struct{}
	once           sync.Once
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll sends everything buffered so far. Messages stay buffered when
// PushLogic fails.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	messages := p.MessagesBuffer
	p.MessagesBuffer = nil
	p.lock.Unlock()

	if len(messages) == 0 {
		return nil
	}

	if err := p.PushLogic(messages...); err != nil {
		p.lock.Lock()
		p.MessagesBuffer = append(messages, p.MessagesBuffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-p.stop:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			}
		}
	}()
}

// Stop flushes the buffer one last time and waits for the push loop to exit.
func (p *Pusher[T]) Stop() {
	p.once.Do(func() {
		close(p.stop)
		<-p.done
	})
}
