// Package gallery implements the gesture handling of an image gallery: a pager that swipes between images, each
// of which can be panned and zoomed. A single pointer gesture is routed to either the pager or the current image,
// and ownership moves between the two mid-gesture when the image runs out of room to pan.
package gallery

import (
	"context"
	rtrace "runtime/trace"

	"honnef.co/go/gallery/gesture"
	"honnef.co/go/gallery/layout"

	"gioui.org/op"
	"gioui.org/op/clip"
)

// Gallery is the widget state of a gallery. The pages themselves are drawn by the widget passed to Layout.
type Gallery struct {
	*Controller

	session gesture.Session
}

func New(pager Pager, cfg Config) *Gallery {
	return &Gallery{Controller: NewController(pager, cfg)}
}

// Session returns the touch session driving the gallery.
func (g *Gallery) Session() *gesture.Session { return &g.session }

// Update processes pending pointer events and dismiss actions. A pending dismiss action is checked again on the
// next frame; the action has to request that frame when it completes. Only the dismiss timeout, if any, schedules
// a frame of its own.
func (g *Gallery) Update(gtx layout.Context) {
	g.SetViewport(layout.FPt(gtx.Constraints.Max))
	g.session.Update(gtx.Queue, g.Controller)
	g.Controller.Update(gtx.Now)
	if at, ok := g.dismissDeadline(); ok {
		op.InvalidateOp{At: at}.Add(gtx.Ops)
	}
}

func (g *Gallery) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "gallery.Gallery.Layout").End()

	g.Update(gtx)
	dims := w(gtx)
	if g.PageCount() == 0 {
		// Nothing to swipe or pan.
		return dims
	}
	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	st := g.session.State()
	g.session.Add(gtx.Ops, !g.AllowTermination(&st))
	return dims
}
