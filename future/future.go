// Package future provides single-resolution values that are produced on one goroutine and polled, without
// blocking, from the UI goroutine.
package future

type Future[T any] struct {
	// Concurrently accessed by the producer and the poller
	result    chan T
	cancelled chan struct{}

	// Accessed by the poller only
	res    T
	resSet bool
}

// New returns an unresolved future and the function that resolves it. Only the first call of resolve has an
// effect. Calls after the future has been cancelled are ignored.
func New[T any]() (*Future[T], func(T)) {
	ft := &Future[T]{
		result:    make(chan T, 1),
		cancelled: make(chan struct{}),
	}
	return ft, ft.resolve
}

// Immediate returns a future that is already resolved to value.
func Immediate[T any](value T) *Future[T] {
	return &Future[T]{
		res:       value,
		resSet:    true,
		cancelled: make(chan struct{}),
	}
}

// Go runs fn in a new goroutine and resolves the future with its return value. invalidate, if not nil, is called
// once the value is available, so that the poller can schedule another frame.
func Go[T any](invalidate func(), fn func(cancelled <-chan struct{}) T) *Future[T] {
	ft, resolve := New[T]()
	go func() {
		res := fn(ft.cancelled)
		select {
		case <-ft.cancelled:
			// We got cancelled, the return value is meaningless
			return
		default:
		}
		resolve(res)
		if invalidate != nil {
			invalidate()
		}
	}()
	return ft
}

func (ft *Future[T]) resolve(v T) {
	select {
	case <-ft.cancelled:
		return
	default:
	}
	select {
	case ft.result <- v:
	default:
		// Already resolved, discard the new value.
	}
}

// Result returns the future's value and whether it is available. It never blocks.
func (ft *Future[T]) Result() (T, bool) {
	if ft.resSet {
		return ft.res, true
	}
	select {
	case <-ft.cancelled:
		return *new(T), false
	default:
	}
	select {
	case res := <-ft.result:
		ft.res = res
		ft.resSet = true
		return res, true
	default:
		return *new(T), false
	}
}

// Cancel signals the producer that the value is no longer needed. Once cancelled, Result reports no value unless
// it had already been read.
func (ft *Future[T]) Cancel() {
	select {
	case <-ft.cancelled:
	default:
		close(ft.cancelled)
	}
}

// Cancelled returns a channel that is closed when the future is cancelled.
func (ft *Future[T]) Cancelled() <-chan struct{} { return ft.cancelled }
