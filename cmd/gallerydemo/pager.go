package main

import (
	"math"
	"time"

	"honnef.co/go/gallery/gallery"
	"honnef.co/go/gallery/gesture"
	"honnef.co/go/gallery/layout"

	"gioui.org/op"
	"honnef.co/go/stuff/math/mathutil"
)

const (
	minSettleDuration = 80 * time.Millisecond
	maxSettleDuration = 300 * time.Millisecond
)

// pager scrolls horizontally between pages of equal width.
type pager struct {
	ctrl  *gallery.Controller
	width float32
	count int

	// page is the selected page, scroll the absolute scroll position.
	page   int
	scroll float32
	state  gallery.ScrollState

	settle struct {
		active   bool
		from, to float32
		target   int
		start    time.Time
		duration time.Duration
	}
}

func (p *pager) setState(s gallery.ScrollState) {
	if p.state == s {
		return
	}
	p.state = s
	p.ctrl.PageScrollStateChanged(s)
}

// setScroll moves the scroll position and reports the progress to the controller.
func (p *pager) setScroll(scroll float32) {
	if scroll == p.scroll {
		return
	}
	p.scroll = scroll
	if p.width <= 0 {
		return
	}
	pos := p.scroll / p.width
	page := int(pos)
	p.ctrl.PageScrolled(page, pos-float32(page))
}

func (p *pager) maxScroll() float32 {
	return float32(max(p.count-1, 0)) * p.width
}

func (p *pager) Grant(st *gesture.State) {
	p.settle.active = false
	p.setState(gallery.ScrollDragging)
}

func (p *pager) Drag(st *gesture.State) {
	p.setScroll(min(max(p.scroll-st.StepX(), 0), p.maxScroll()))
}

func (p *pager) Release(st *gesture.State, disableSettle bool) {
	if disableSettle {
		if p.ScrollOffsetFromSettlePoint() == 0 {
			p.setState(gallery.ScrollIdle)
		}
		return
	}
	target := p.page
	off := p.ScrollOffsetFromSettlePoint()
	threshold := p.ctrl.Config().FlingVelocityThreshold
	if off > p.width/3 || st.VX < -threshold {
		target++
	} else if off < -p.width/3 || st.VX > threshold {
		target--
	}
	p.settleTo(target, 0)
}

func (p *pager) ScrollOffsetFromSettlePoint() float32 {
	return p.scroll - float32(p.page)*p.width
}

func (p *pager) ScrollByOffset(offset float32) {
	p.setScroll(p.scroll - offset)
}

func (p *pager) FlingToPage(page int, velocity float32) {
	p.settleTo(page, velocity)
}

func (p *pager) SetPage(page int) {
	p.settleTo(page, 0)
}

// settleTo animates the scroll position to the settle point of page. A non-zero velocity, in pixels per
// millisecond, shortens the animation.
func (p *pager) settleTo(page int, velocity float32) {
	page = min(max(page, 0), max(p.count-1, 0))
	to := float32(page) * p.width
	d := maxSettleDuration
	if velocity != 0 {
		ms := math.Abs(float64(to-p.scroll) / float64(velocity))
		d = min(max(time.Duration(ms*float64(time.Millisecond)), minSettleDuration), maxSettleDuration)
	}
	p.settle.active = true
	p.settle.from = p.scroll
	p.settle.to = to
	p.settle.target = page
	p.settle.start = time.Time{}
	p.settle.duration = d
	p.setState(gallery.ScrollSettling)
}

// Update advances the settle animation.
func (p *pager) Update(gtx layout.Context) {
	p.width = float32(gtx.Constraints.Max.X)
	if !p.settle.active {
		return
	}
	if p.settle.start.IsZero() {
		p.settle.start = gtx.Now
	}
	r := float64(gtx.Now.Sub(p.settle.start)) / float64(p.settle.duration)
	if r < 1 {
		p.setScroll(mathutil.Lerp(p.settle.from, p.settle.to, easeOutCubic(r)))
		op.InvalidateOp{}.Add(gtx.Ops)
		return
	}
	p.setScroll(p.settle.to)
	p.settle.active = false
	if p.settle.target != p.page {
		p.page = p.settle.target
		p.ctrl.PageSelected(p.page)
	}
	p.setState(gallery.ScrollIdle)
}

func easeOutCubic(t float64) float64 {
	t = 1 - t
	return 1 - t*t*t
}
