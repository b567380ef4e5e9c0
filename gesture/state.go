package gesture

import "gioui.org/f32"

// State describes one touch session as seen by its consumers. Positions are in pixels, velocities in pixels per
// millisecond.
type State struct {
	// X0 and Y0 are the position at which the session was granted.
	X0, Y0 float32
	// MoveX and MoveY are the latest position of the primary pointer, minus the session's offset.
	MoveX, MoveY float32
	// PreviousMoveX and PreviousMoveY are the values of MoveX and MoveY before the latest move.
	PreviousMoveX, PreviousMoveY float32
	// DX and DY are the net displacement since the session was granted.
	DX, DY float32
	VX, VY float32
	// NumberActiveTouches is the number of pointers currently pressed.
	NumberActiveTouches int

	// offset is subtracted from raw pointer positions. It accumulates displacement that has been consumed out of band,
	// for example by a consumer that gave up control mid-gesture.
	offset f32.Point
}

// StepX returns the horizontal movement of the latest move.
func (st *State) StepX() float32 { return st.MoveX - st.PreviousMoveX }

// StepY returns the vertical movement of the latest move.
func (st *State) StepY() float32 { return st.MoveY - st.PreviousMoveY }

// Shift marks dx pixels of horizontal movement as already consumed. MoveX and DX are reduced by dx immediately, and
// all future moves of the session are reported relative to the shifted position.
func (st *State) Shift(dx float32) {
	st.MoveX -= dx
	st.DX -= dx
	st.offset.X += dx
}

// OffsetX returns the total horizontal displacement consumed via Shift.
func (st *State) OffsetX() float32 { return st.offset.X }

func (st *State) begin(pos f32.Point) {
	*st = State{
		X0:                  pos.X,
		Y0:                  pos.Y,
		MoveX:               pos.X,
		MoveY:               pos.Y,
		PreviousMoveX:       pos.X,
		PreviousMoveY:       pos.Y,
		NumberActiveTouches: 1,
	}
}

// moveTo records a new raw pointer position. dt is the time since the previous position, in milliseconds.
func (st *State) moveTo(pos f32.Point, dt float32) {
	pos = pos.Sub(st.offset)
	st.PreviousMoveX, st.PreviousMoveY = st.MoveX, st.MoveY
	st.MoveX, st.MoveY = pos.X, pos.Y
	st.DX = st.MoveX - st.X0
	st.DY = st.MoveY - st.Y0
	if dt > 0 {
		st.VX = st.StepX() / dt
		st.VY = st.StepY() / dt
	}
}

// rebase changes the offset so that the raw position pos maps onto the current MoveX and MoveY. It is used when a
// different pointer becomes the primary one, to avoid a jump.
func (st *State) rebase(pos f32.Point) {
	st.offset = pos.Sub(f32.Pt(st.MoveX, st.MoveY))
}
