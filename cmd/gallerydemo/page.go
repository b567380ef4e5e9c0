package main

import (
	"image"
	"image/color"

	"honnef.co/go/gallery/gallery"
	"honnef.co/go/gallery/gesture"
	"honnef.co/go/gallery/layout"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

const zoomedScale = 2.5

// page is a placeholder image that can be panned horizontally while zoomed, and dragged vertically.
type page struct {
	color color.NRGBA
	size  f32.Point
	t     gallery.Transform
}

func newPage(c color.NRGBA) *page {
	return &page{color: c, t: gallery.Identity}
}

func (pg *page) maxTranslateX() float32 {
	return (pg.t.Scale - 1) * pg.size.X / 2
}

func (pg *page) clamp() {
	m := pg.maxTranslateX()
	pg.t.TranslateX = min(max(pg.t.TranslateX, -m), m)
}

func (pg *page) Grant(st *gesture.State) {}

func (pg *page) Drag(st *gesture.State) {
	pg.t.TranslateX += st.StepX()
	pg.t.TranslateY += st.StepY()
	pg.clamp()
}

func (pg *page) Release(st *gesture.State) {
	pg.t.TranslateY = 0
}

func (pg *page) AvailableTranslateSpace() gesture.TranslateSpace {
	m := pg.maxTranslateX()
	return gesture.TranslateSpace{
		Left:  m - pg.t.TranslateX,
		Right: m + pg.t.TranslateX,
	}
}

func (pg *page) ForceTransform(t gallery.Transform) {
	pg.t = t
	pg.clamp()
}

func (pg *page) toggleZoom() {
	if pg.t.Scale > 1 {
		pg.ForceTransform(gallery.Identity)
	} else {
		pg.ForceTransform(gallery.Transform{Scale: zoomedScale})
	}
}

func (pg *page) Layout(gtx layout.Context) layout.Dimensions {
	sz := gtx.Constraints.Max
	pg.size = layout.FPt(sz)

	paint.FillShape(gtx.Ops, color.NRGBA{A: 0xFF}, clip.Rect{Max: sz}.Op())

	center := pg.size.Div(2)
	aff := f32.Affine2D{}.
		Scale(center, f32.Pt(pg.t.Scale, pg.t.Scale)).
		Offset(f32.Pt(pg.t.TranslateX, pg.t.TranslateY))
	defer op.Affine(aff).Push(gtx.Ops).Pop()

	// A grid of tiles, so that panning is visible.
	const tiles = 4
	tw, th := sz.X/tiles, sz.Y/tiles
	for y := 0; y < tiles; y++ {
		for x := 0; x < tiles; x++ {
			c := pg.color
			if (x+y)%2 == 1 {
				c.A = 0xA0
			}
			r := image.Rect(x*tw, y*th, (x+1)*tw, (y+1)*th)
			paint.FillShape(gtx.Ops, c, clip.Rect(r).Op())
		}
	}
	return layout.Dimensions{Size: sz}
}
