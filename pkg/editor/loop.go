package editor

import "sync"

// Loop wraps a Controller in a single-consumer message queue for hosts
// that do not already serialize events. One goroutine owns the
// controller; subscribers receive every snapshot in event order.
type Loop struct {
	ctrl   *Controller
	events chan Event
	quit   chan struct{}

	mu   sync.Mutex
	subs []chan State

	wg        sync.WaitGroup
	closeOnce sync.Once
	final     State
}

// NewLoop starts the consumer goroutine. The buffer bounds how far
// producers can run ahead of the transition function.
func NewLoop(ctrl *Controller, buffer int) *Loop {
	if buffer <= 0 {
		buffer = 16
	}
	l := &Loop{
		ctrl:   ctrl,
		events: make(chan Event, buffer),
		quit:   make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

// Dispatch enqueues an event. Events dispatched after Close are dropped.
func (l *Loop) Dispatch(ev Event) {
	select {
	case l.events <- ev:
	case <-l.quit:
	}
}

// Subscribe returns a channel receiving each snapshot the loop emits.
// The channel closes when the loop closes. Subscribers must keep up;
// the buffer absorbs short bursts only.
func (l *Loop) Subscribe() <-chan State {
	ch := make(chan State, 64)
	l.mu.Lock()
	l.subs = append(l.subs, ch)
	l.mu.Unlock()
	return ch
}

// Close drains pending events, closes the controller (committing per its
// mode and firing the dismissal notification), closes subscriber
// channels, and returns the final snapshot. Safe to call more than once.
func (l *Loop) Close() State {
	l.closeOnce.Do(func() {
		close(l.quit)
		l.wg.Wait()

		// Apply whatever was queued before the quit won the race
		for {
			select {
			case ev := <-l.events:
				l.publish(l.ctrl.Apply(ev))
			default:
				l.final = l.ctrl.Close()
				l.mu.Lock()
				for _, ch := range l.subs {
					close(ch)
				}
				l.subs = nil
				l.mu.Unlock()
				return
			}
		}
	})
	return l.final
}

func (l *Loop) run() {
	defer l.wg.Done()
	for {
		select {
		case ev := <-l.events:
			l.publish(l.ctrl.Apply(ev))
		case <-l.quit:
			return
		}
	}
}

func (l *Loop) publish(st State) {
	l.mu.Lock()
	subs := l.subs
	l.mu.Unlock()
	for _, ch := range subs {
		ch <- st
	}
}
