package gallery

import (
	"honnef.co/go/gallery/gesture"
)

// Pager is the page container. It owns scrolling between pages, settling and flinging; the gallery only feeds it
// gestures.
//
// Scroll offsets are measured in the direction of page indices: a positive offset means the container has scrolled
// past the settle point of the current page towards the next page. ScrollByOffset moves the content along with
// the finger, that is, ScrollByOffset(d) decreases the scroll position by d.
type Pager interface {
	Grant(st *gesture.State)
	Drag(st *gesture.State)
	// Release ends a drag. If disableSettle is true, the pager must not animate towards a settle point.
	Release(st *gesture.State, disableSettle bool)
	ScrollOffsetFromSettlePoint() float32
	ScrollByOffset(offset float32)
	FlingToPage(page int, velocity float32)
	SetPage(page int)
}

// Transformer is the pan/zoom transformer of a single image.
type Transformer interface {
	Grant(st *gesture.State)
	Drag(st *gesture.State)
	Release(st *gesture.State)
	AvailableTranslateSpace() gesture.TranslateSpace
	ForceTransform(t Transform)
}

type Transform struct {
	Scale      float32
	TranslateX float32
	TranslateY float32
}

// Identity is the transform of an image that is neither panned nor zoomed.
var Identity = Transform{Scale: 1}

type ConsumerKind uint8

const (
	NoConsumer ConsumerKind = iota
	PageConsumer
	ImageConsumer
)

func (k ConsumerKind) String() string {
	switch k {
	case NoConsumer:
		return "none"
	case PageConsumer:
		return "page"
	case ImageConsumer:
		return "image"
	default:
		return "invalid"
	}
}

// consumer is one of the two gesture consumers. The set of implementations is closed.
type consumer interface {
	kind() ConsumerKind
	start(st *gesture.State)
	move(st *gesture.State)
	end(st *gesture.State, disableSettle bool)
}

type pageConsumer struct {
	c *Controller
}

func (pc *pageConsumer) kind() ConsumerKind            { return PageConsumer }
func (pc *pageConsumer) start(st *gesture.State)       { pc.c.pager.Grant(st) }
func (pc *pageConsumer) move(st *gesture.State)        { pc.c.pager.Drag(st) }
func (pc *pageConsumer) end(st *gesture.State, d bool) { pc.c.pager.Release(st, d) }

// imageConsumer forwards to the transformer of whichever page is current at the time of the call. Pages that
// haven't been mounted yet silently drop the gesture.
type imageConsumer struct {
	c *Controller
}

func (ic *imageConsumer) kind() ConsumerKind { return ImageConsumer }

func (ic *imageConsumer) start(st *gesture.State) {
	if t, ok := ic.c.currentTransformer(); ok {
		t.Grant(st)
	}
}

func (ic *imageConsumer) move(st *gesture.State) {
	if ic.c.Hooks.StartMove != nil {
		ic.c.Hooks.StartMove()
	}
	if t, ok := ic.c.currentTransformer(); ok {
		t.Drag(st)
	}
}

// end releases the transformer without running the dismiss protocol. The controller runs that protocol itself
// when the session ends.
func (ic *imageConsumer) end(st *gesture.State, _ bool) {
	if t, ok := ic.c.currentTransformer(); ok {
		t.Release(st)
	}
}
