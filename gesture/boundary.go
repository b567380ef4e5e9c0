package gesture

// TranslateSpace is how far an image can still be panned before it hits its own edge. Left is the room for moving
// the content to the right, Right the room for moving it to the left.
type TranslateSpace struct {
	Left  float32
	Right float32
}

// ShouldYieldToPager reports whether the latest horizontal movement should be handled by the pager instead of the
// image. This is the case when the image cannot pan any further in the direction of travel and there is a page to
// reveal in that direction.
//
// It has to be evaluated on every move, as the translate space changes while the image is being panned.
func ShouldYieldToPager(st *State, space TranslateSpace, currentPage, pageCount int) bool {
	if st.NumberActiveTouches > 1 {
		// Multiple pointers are for zooming the image.
		return false
	}
	dx := st.StepX()
	if dx > 0 && space.Left <= 0 && currentPage > 0 {
		return true
	}
	if dx < 0 && space.Right <= 0 && currentPage < pageCount-1 {
		return true
	}
	return false
}
