package service

// UnauthorizedEvents collapses unauthorized notifications into a one-slot
// channel. Notifying never blocks; notifications that arrive while one is
// still pending are dropped.
type UnauthorizedEvents struct {
	ch chan struct{}
}

func NewUnauthorizedEvents() *UnauthorizedEvents {
	return &UnauthorizedEvents{ch: make(chan struct{}, 1)}
}

func (e *UnauthorizedEvents) NotifyUnauthorized() {
	select {
	case e.ch <- struct{}{}:
	default:
	}
}

// Events is received from by whoever handles re-authentication.
func (e *UnauthorizedEvents) Events() <-chan struct{} {
	return e.ch
}
