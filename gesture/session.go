package gesture

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"golang.org/x/exp/slices"
)

// releaseVelocityWindow is how recent the last movement must be for its velocity to carry into the release.
const releaseVelocityWindow = 100 * time.Millisecond

// Responder receives the lifecycle of touch sessions. All methods are called on the goroutine that calls
// Session.Update, in order: Grant, zero or more Move, then exactly one of Release or Terminate.
type Responder interface {
	Grant(st *State)
	Move(st *State)
	Release(st *State)
	Terminate(st *State)
	// AllowTermination reports whether another handler may take over the pointer during a session.
	AllowTermination(st *State) bool
	// SingleTapConfirmed is called after Release if the session never moved and only ever had one pointer.
	SingleTapConfirmed(st *State)
}

type touch struct {
	id  pointer.ID
	pos f32.Point
}

// Session turns a stream of pointer events into touch sessions. A session starts with the first press and lasts
// until the last pressed pointer is released or the pointer is cancelled. Only the primary pointer moves the
// session; additional pointers are counted in State.NumberActiveTouches.
type Session struct {
	state   State
	active  bool
	touches []touch
	// moved latches once the primary pointer moved.
	moved bool
	// maxTouches is the largest number of simultaneous pointers seen in this session.
	maxTouches int
	last       time.Duration
}

// Add the handler to the operation list to receive pointer events. If grab is true, the session keeps the
// pointer once pressed and handlers below it receive a Cancel.
func (s *Session) Add(ops *op.Ops, grab bool) {
	pointer.InputOp{
		Tag:   s,
		Grab:  grab,
		Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Active reports whether a session is in progress.
func (s *Session) Active() bool { return s.active }

// State returns the state of the current or most recent session.
func (s *Session) State() State { return s.state }

// Update processes all pending pointer events and forwards them to r.
func (s *Session) Update(q event.Queue, r Responder) {
	if q == nil {
		return
	}
	for _, evt := range q.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		s.Handle(e, r)
	}
}

// Handle processes a single pointer event.
func (s *Session) Handle(e pointer.Event, r Responder) {
	switch e.Kind {
	case pointer.Press:
		if !s.active {
			s.active = true
			s.moved = false
			s.maxTouches = 1
			s.touches = append(s.touches[:0], touch{e.PointerID, e.Position})
			s.last = e.Time
			s.state.begin(e.Position)
			r.Grant(&s.state)
			return
		}
		if s.index(e.PointerID) != -1 {
			return
		}
		s.touches = append(s.touches, touch{e.PointerID, e.Position})
		s.state.NumberActiveTouches = len(s.touches)
		if len(s.touches) > s.maxTouches {
			s.maxTouches = len(s.touches)
		}

	case pointer.Drag:
		if !s.active {
			return
		}
		i := s.index(e.PointerID)
		if i == -1 {
			return
		}
		if s.touches[i].pos == e.Position {
			return
		}
		s.touches[i].pos = e.Position
		if i != 0 {
			// Only the primary pointer drives the session.
			return
		}
		dt := float32(e.Time-s.last) / float32(time.Millisecond)
		s.last = e.Time
		s.state.moveTo(e.Position, dt)
		s.moved = true
		r.Move(&s.state)

	case pointer.Release:
		if !s.active {
			return
		}
		i := s.index(e.PointerID)
		if i == -1 {
			return
		}
		s.touches = slices.Delete(s.touches, i, i+1)
		if len(s.touches) > 0 {
			s.state.NumberActiveTouches = len(s.touches)
			if i == 0 {
				s.state.rebase(s.touches[0].pos)
			}
			return
		}
		s.active = false
		if i == 0 && e.Time-s.last > releaseVelocityWindow {
			// The pointer rested before it was lifted.
			s.state.VX, s.state.VY = 0, 0
		}
		r.Release(&s.state)
		if !s.moved && s.maxTouches == 1 {
			r.SingleTapConfirmed(&s.state)
		}

	case pointer.Cancel:
		if !s.active {
			return
		}
		s.active = false
		s.touches = s.touches[:0]
		r.Terminate(&s.state)
	}
}

func (s *Session) index(id pointer.ID) int {
	return slices.IndexFunc(s.touches, func(t touch) bool { return t.id == id })
}
