// Command gallerydemo shows a swipeable gallery of placeholder images. Tap to zoom, drag to pan, and release near
// the top or bottom edge to trigger the dismiss actions.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"honnef.co/go/gallery/future"
	"honnef.co/go/gallery/gallery"
	"honnef.co/go/gallery/layout"

	"gioui.org/app"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/x/eventx"
)

var palette = []color.NRGBA{
	{R: 0xbb, G: 0x5d, B: 0x5d, A: 0xFF},
	{R: 0x44, G: 0x88, B: 0x44, A: 0xFF},
	{R: 0x4b, G: 0xac, B: 0xb8, A: 0xFF},
	{R: 0xdd, G: 0xaa, B: 0x33, A: 0xFF},
	{R: 0x88, G: 0x55, B: 0xaa, A: 0xFF},
}

// dismissActions stands in for the navigation of a host application.
type dismissActions struct {
	win *app.Window
}

func (a dismissActions) scroll(dir string, distance float32) *future.Future[struct{}] {
	log.Printf("dismissing towards the %s (%.0fpx)", dir, distance)
	return future.Go(a.win.Invalidate, func(cancelled <-chan struct{}) struct{} {
		select {
		case <-time.After(300 * time.Millisecond):
		case <-cancelled:
		}
		return struct{}{}
	})
}

func (a dismissActions) ScrollToTop(distance float32) *future.Future[struct{}] {
	return a.scroll("top", distance)
}

func (a dismissActions) ScrollToBottom(distance float32) *future.Future[struct{}] {
	return a.scroll("bottom", distance)
}

func (a dismissActions) PressEnd() {}

type demo struct {
	pager   pager
	gallery *gallery.Gallery
	pages   []*page
	verbose bool
}

func newDemo(win *app.Window, n int, cfg gallery.Config, verbose bool) *demo {
	d := &demo{verbose: verbose}
	d.gallery = gallery.New(&d.pager, cfg)
	d.pager.ctrl = d.gallery.Controller
	d.pager.count = n
	d.gallery.Actions = dismissActions{win: win}
	d.gallery.SetPageCount(n)
	for i := 0; i < n; i++ {
		pg := newPage(palette[i%len(palette)])
		d.pages = append(d.pages, pg)
		d.gallery.Mount(i, pg)
	}

	d.gallery.Hooks.SingleTapConfirmed = func(i int) {
		d.pages[i].toggleZoom()
	}
	d.gallery.Hooks.DismissStalled = func(i int) {
		log.Printf("dismiss action for page %d did not complete", i)
	}
	if verbose {
		d.gallery.Hooks.PageSelected = func(i int) { log.Printf("selected page %d", i) }
		d.gallery.Hooks.PageScrollStateChanged = func(s gallery.ScrollState) { log.Printf("pager is %s", s) }
		d.gallery.Hooks.RoutingStateChanged = func(b bool) { log.Printf("pager routable: %t", b) }
		d.gallery.Hooks.PageScroll = func(i int, off float32) { log.Printf("scrolled to page %d + %.2f", i, off) }
	}
	return d
}

func (d *demo) Layout(gtx layout.Context) layout.Dimensions {
	var spy *eventx.Spy
	if d.verbose {
		spy, gtx = eventx.Enspy(gtx)
	}

	d.pager.Update(gtx)
	dims := d.gallery.Layout(gtx, d.layoutPages)

	if spy != nil {
		for _, evs := range spy.AllEvents() {
			for _, ev := range evs.Items {
				if ev, ok := ev.(pointer.Event); ok {
					log.Printf("%s at %v, %s", ev.Kind, ev.Position, d.gallery.State())
				}
			}
		}
	}
	return dims
}

func (d *demo) layoutPages(gtx layout.Context) layout.Dimensions {
	sz := gtx.Constraints.Max
	gtx.Constraints = layout.Exact(sz)
	for i, pg := range d.pages {
		x := float32(i)*float32(sz.X) - d.pager.scroll
		if x <= -float32(sz.X) || x >= float32(sz.X) {
			continue
		}
		stack := op.Offset(image.Pt(int(x), 0)).Push(gtx.Ops)
		clipStack := clip.Rect{Max: sz}.Push(gtx.Ops)
		pg.Layout(gtx)
		clipStack.Pop()
		stack.Pop()
	}
	return layout.Dimensions{Size: sz}
}

func run(win *app.Window, d *demo) error {
	var ops op.Ops
	for {
		switch e := win.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			d.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func main() {
	var (
		n         = flag.Int("pages", 5, "number of pages")
		threshold = flag.Float64("threshold", 10, "height of the dismiss bands, in percent of the window height")
		fling     = flag.Float64("fling", float64(gallery.DefaultConfig().FlingVelocityThreshold), "minimum fling velocity, in pixels per millisecond")
		timeout   = flag.Duration("dismiss-timeout", 0, "give up on dismiss actions after this long; 0 waits forever")
		verbose   = flag.Bool("v", false, "log pointer events and gallery notifications")
	)
	flag.Parse()
	if *n < 0 {
		log.Fatalf("invalid number of pages: %d", *n)
	}

	cfg := gallery.Config{
		DismissThresholdPercent: float32(*threshold),
		FlingVelocityThreshold:  float32(*fling),
		DismissTimeout:          *timeout,
	}

	go func() {
		w := app.NewWindow(app.Title("Gallery"))
		err := run(w, newDemo(w, *n, cfg, *verbose))
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
