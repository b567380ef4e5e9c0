package gallery

import (
	"fmt"
	"strings"

	"honnef.co/go/gallery/future"
	"honnef.co/go/gallery/gesture"
)

// journal records calls of all fakes of a test in a single, ordered list.
type journal []string

func (j *journal) add(format string, args ...any) { *j = append(*j, fmt.Sprintf(format, args...)) }
func (j *journal) String() string               { return strings.Join(*j, "; ") }
func (j *journal) reset()                       { *j = (*j)[:0] }

func (j *journal) count(prefix string) int {
	n := 0
	for _, e := range *j {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}

type fakePager struct {
	j *journal
	// offset is the scroll offset from the current page's settle point.
	offset float32
}

func (p *fakePager) Grant(st *gesture.State) { p.j.add("pager grant") }
func (p *fakePager) Drag(st *gesture.State) {
	p.j.add("pager drag %v", st.StepX())
	// Dragging right moves towards the previous page.
	p.offset -= st.StepX()
}
func (p *fakePager) Release(st *gesture.State, disableSettle bool) {
	p.j.add("pager release %t", disableSettle)
}
func (p *fakePager) ScrollOffsetFromSettlePoint() float32 { return p.offset }
func (p *fakePager) ScrollByOffset(offset float32) {
	p.j.add("pager scroll %v", offset)
	p.offset -= offset
}
func (p *fakePager) FlingToPage(page int, velocity float32) {
	p.j.add("pager fling %d %v", page, velocity)
}
func (p *fakePager) SetPage(page int) { p.j.add("pager set %d", page) }

type fakeTransformer struct {
	j     *journal
	page  int
	space gesture.TranslateSpace
	t     Transform
}

func (tr *fakeTransformer) Grant(st *gesture.State) { tr.j.add("image%d grant", tr.page) }
func (tr *fakeTransformer) Drag(st *gesture.State) {
	tr.j.add("image%d drag %v", tr.page, st.StepX())
}
func (tr *fakeTransformer) Release(st *gesture.State) { tr.j.add("image%d release", tr.page) }
func (tr *fakeTransformer) AvailableTranslateSpace() gesture.TranslateSpace {
	return tr.space
}
func (tr *fakeTransformer) ForceTransform(t Transform) {
	tr.j.add("image%d force %v", tr.page, t)
	tr.t = t
}

type fakeActions struct {
	j      *journal
	top    *future.Future[struct{}]
	bottom *future.Future[struct{}]
}

func (a *fakeActions) ScrollToTop(distance float32) *future.Future[struct{}] {
	a.j.add("top %v", distance)
	return a.top
}

func (a *fakeActions) ScrollToBottom(distance float32) *future.Future[struct{}] {
	a.j.add("bottom %v", distance)
	return a.bottom
}

func (a *fakeActions) PressEnd() { a.j.add("press end") }

type fixture struct {
	j      *journal
	c      *Controller
	pager  *fakePager
	images []*fakeTransformer
}

// newFixture returns a controller with count mounted pages, showing page current.
func newFixture(count, current int) *fixture {
	j := &journal{}
	f := &fixture{
		j:     j,
		pager: &fakePager{j: j},
	}
	f.c = NewController(f.pager, DefaultConfig())
	f.c.SetPageCount(count)
	for i := 0; i < count; i++ {
		tr := &fakeTransformer{j: j, page: i}
		f.images = append(f.images, tr)
		f.c.Mount(i, tr)
	}
	f.c.PageSelected(current)
	return f
}

// moveTo moves st horizontally to x and delivers the move.
func (f *fixture) moveTo(st *gesture.State, x float32) {
	st.PreviousMoveX, st.PreviousMoveY = st.MoveX, st.MoveY
	st.MoveX = x
	st.DX = st.MoveX - st.X0
	f.c.Move(st)
}

func newState(x, y float32) *gesture.State {
	return &gesture.State{
		X0: x, Y0: y,
		MoveX: x, MoveY: y,
		PreviousMoveX: x, PreviousMoveY: y,
		NumberActiveTouches: 1,
	}
}
