package gallery

import (
	"time"

	"honnef.co/go/gallery/future"
	"honnef.co/go/gallery/gesture"

	"gioui.org/f32"
)

type Config struct {
	// DismissThresholdPercent is the height of the top and bottom dismiss bands, in percent of the viewport height.
	DismissThresholdPercent float32
	// FlingVelocityThreshold is the minimum horizontal release velocity, in pixels per millisecond, for the pager to
	// fling back to the current page.
	FlingVelocityThreshold float32
	// DismissTimeout, if positive, bounds how long the release of an image waits for a dismiss action to complete.
	// The zero value waits forever.
	DismissTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		FlingVelocityThreshold: 0.5,
	}
}

func (cfg Config) normalize() Config {
	if cfg.DismissThresholdPercent < 0 {
		cfg.DismissThresholdPercent = 0
	} else if cfg.DismissThresholdPercent > 100 {
		cfg.DismissThresholdPercent = 100
	}
	if cfg.FlingVelocityThreshold <= 0 {
		cfg.FlingVelocityThreshold = DefaultConfig().FlingVelocityThreshold
	}
	if cfg.DismissTimeout < 0 {
		cfg.DismissTimeout = 0
	}
	return cfg
}

// Actions are the external actions of the vertical dismiss gesture. ScrollToTop and ScrollToBottom may run
// asynchronously; the image is released once the returned future resolves. A nil future counts as resolved.
// Futures that resolve later must invalidate the window when they do, as future.Go does, since the gallery only
// checks them while drawing frames.
type Actions interface {
	ScrollToTop(distance float32) *future.Future[struct{}]
	ScrollToBottom(distance float32) *future.Future[struct{}]
	PressEnd()
}

// Hooks are notifications emitted by the controller. All of them are optional.
type Hooks struct {
	PageSelected           func(page int)
	PageScrollStateChanged func(state ScrollState)
	// PageScroll reports the pager's scroll position as the leftmost visible page and the fraction of it that is
	// scrolled out of view, in [0, 1).
	PageScroll func(page int, offset float32)
	// RoutingStateChanged reports false when a session starts routing moves and true when it ends.
	RoutingStateChanged func(pagerRoutable bool)
	SingleTapConfirmed  func(page int)
	// Move reports the vertical distance of the pointer from the middle of the viewport, for every routed move.
	Move      func(offset float32)
	StartMove func()
	// DismissStalled reports that the release of page's image was finalized without its dismiss action completing.
	DismissStalled func(page int)
}

type ScrollState uint8

const (
	ScrollIdle ScrollState = iota
	ScrollDragging
	ScrollSettling
)

func (s ScrollState) String() string {
	switch s {
	case ScrollIdle:
		return "idle"
	case ScrollDragging:
		return "dragging"
	case ScrollSettling:
		return "settling"
	default:
		return "invalid"
	}
}

type ArbitrationState uint8

const (
	Idle ArbitrationState = iota
	Undetermined
	ActivePage
	ActiveImage
	// Ended is reported after a session has ended while the image's release is still waiting for a dismiss action.
	Ended
)

func (s ArbitrationState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Undetermined:
		return "undetermined"
	case ActivePage:
		return "active page"
	case ActiveImage:
		return "active image"
	case Ended:
		return "ended"
	default:
		return "invalid"
	}
}

// Controller routes touch sessions to either the pager or the transformer of the current image. It implements
// gesture.Responder and must only be used from a single goroutine.
type Controller struct {
	Hooks   Hooks
	Actions Actions

	cfg      Config
	pager    Pager
	page     pageConsumer
	image    imageConsumer
	handles  handles
	viewport f32.Point

	active consumer
	// firstMove is true between a grant and the first move of a session.
	firstMove bool

	currentPage int
	pageCount   int

	pending *pendingDismiss
}

var _ gesture.Responder = (*Controller)(nil)

func NewController(pager Pager, cfg Config) *Controller {
	if pager == nil {
		panic("gallery: nil Pager")
	}
	c := &Controller{
		cfg:   cfg.normalize(),
		pager: pager,
	}
	c.page.c = c
	c.image.c = c
	return c
}

func (c *Controller) Config() Config { return c.cfg }

// SetViewport sets the size of the visible area, which the dismiss bands are relative to.
func (c *Controller) SetViewport(size f32.Point) { c.viewport = size }

// SetPageCount sets the number of pages. Transformers of pages beyond the new count are ignored until the count
// includes them again.
func (c *Controller) SetPageCount(n int) {
	if n < 0 {
		n = 0
	}
	c.pageCount = n
	c.handles.setLimit(n)
}

func (c *Controller) PageCount() int   { return c.pageCount }
func (c *Controller) CurrentPage() int { return c.currentPage }

// Mount registers the transformer of a page, replacing any earlier one. It may be called before SetPageCount. A nil
// transformer unmounts the page.
func (c *Controller) Mount(page int, t Transformer) {
	c.handles.mount(page, t)
}

// SetPage asks the pager to show page. The current page changes once the pager reports the selection.
func (c *Controller) SetPage(page int) {
	c.pager.SetPage(page)
}

// PageSelected must be called by the pager when it selects a page.
func (c *Controller) PageSelected(page int) {
	c.currentPage = page
	if c.Hooks.PageSelected != nil {
		c.Hooks.PageSelected(page)
	}
}

// PageScrollStateChanged must be called by the pager when its scroll state changes. Once the pager is idle,
// the neighbours of the current page are reset so that they show up untransformed when swiped to.
func (c *Controller) PageScrollStateChanged(state ScrollState) {
	if state == ScrollIdle {
		c.resetNeighbours()
	}
	if c.Hooks.PageScrollStateChanged != nil {
		c.Hooks.PageScrollStateChanged(state)
	}
}

// PageScrolled must be called by the pager whenever its scroll position changes. page is the leftmost visible page
// and offset the fraction of it that is scrolled out of view.
func (c *Controller) PageScrolled(page int, offset float32) {
	if c.Hooks.PageScroll != nil {
		c.Hooks.PageScroll(page, offset)
	}
}

func (c *Controller) resetNeighbours() {
	for _, page := range [...]int{c.currentPage + 1, c.currentPage - 1} {
		if t, ok := c.handles.lookup(page); ok {
			t.ForceTransform(Identity)
		}
	}
}

func (c *Controller) currentTransformer() (Transformer, bool) {
	return c.handles.lookup(c.currentPage)
}

// Active returns the kind of the consumer that currently owns the gesture.
func (c *Controller) Active() ConsumerKind {
	if c.active == nil {
		return NoConsumer
	}
	return c.active.kind()
}

func (c *Controller) State() ArbitrationState {
	switch {
	case c.active != nil && c.firstMove:
		return Undetermined
	case c.active != nil && c.active.kind() == PageConsumer:
		return ActivePage
	case c.active != nil:
		return ActiveImage
	case c.pending != nil:
		return Ended
	default:
		return Idle
	}
}

func (c *Controller) translateSpace() gesture.TranslateSpace {
	if t, ok := c.currentTransformer(); ok {
		return t.AvailableTranslateSpace()
	}
	// Nothing to pan on a page that isn't mounted.
	return gesture.TranslateSpace{}
}

func (c *Controller) shouldYieldToPager(st *gesture.State) bool {
	return gesture.ShouldYieldToPager(st, c.translateSpace(), c.currentPage, c.pageCount)
}

// activate makes next the active consumer, ending the previous one.
func (c *Controller) activate(next consumer, st *gesture.State) {
	if c.active == next {
		return
	}
	if c.active != nil {
		// Don't let the pager settle, the gesture continues on the image.
		c.active.end(st, true)
	}
	c.active = next
	next.start(st)
}

func (c *Controller) Grant(st *gesture.State) {
	if c.pageCount == 0 {
		return
	}
	if c.pending != nil && !c.pollDismiss() {
		c.abandonDismiss()
	}
	c.firstMove = true
	// The image is the innermost widget and gets the gesture until the first move says otherwise.
	c.activate(&c.image, st)
}

func (c *Controller) Move(st *gesture.State) {
	if c.active == nil {
		return
	}
	if c.firstMove {
		c.firstMove = false
		if c.shouldYieldToPager(st) {
			c.activate(&c.page, st)
		}
		if c.Hooks.RoutingStateChanged != nil {
			c.Hooks.RoutingStateChanged(false)
		}
	}
	if c.active == &c.page {
		c.handOffToImage(st)
	}
	if c.Hooks.Move != nil {
		c.Hooks.Move(abs(c.viewport.Y/2 - st.MoveY))
	}
	c.active.move(st)
}

// handOffToImage gives the gesture back to the image when the latest move carries the pager past the settle
// point of the current page and the image is able to take the movement. The pager consumes exactly the distance
// to its settle point and the image receives the rest.
func (c *Controller) handOffToImage(st *gesture.State) {
	dx := st.StepX()
	offset := c.pager.ScrollOffsetFromSettlePoint()
	if dx == 0 || offset == 0 || (dx > 0) != (offset > 0) {
		return
	}
	if abs(dx) <= abs(offset) {
		// The pager hasn't reached its settle point yet.
		return
	}
	if c.shouldYieldToPager(st) {
		return
	}
	c.pager.ScrollByOffset(offset)
	st.Shift(offset)
	c.activate(&c.image, st)
}

func (c *Controller) Release(st *gesture.State) { c.endSession(st, true) }

// Terminate ends the session like Release does, but never flings the pager.
func (c *Controller) Terminate(st *gesture.State) { c.endSession(st, false) }

func (c *Controller) endSession(st *gesture.State, mayFling bool) {
	if c.active == nil {
		return
	}
	switch c.active.kind() {
	case PageConsumer:
		if mayFling && abs(st.VX) > c.cfg.FlingVelocityThreshold && !c.shouldYieldToPager(st) {
			c.page.end(st, true)
			c.pager.FlingToPage(c.currentPage, st.VX)
		} else {
			c.page.end(st, false)
		}
	case ImageConsumer:
		c.releaseImage(st)
	}
	c.active = nil
	c.firstMove = false
	if c.Hooks.RoutingStateChanged != nil {
		c.Hooks.RoutingStateChanged(true)
	}
}

// AllowTermination always refuses: once the gallery owns a gesture, nothing else may take it over.
func (c *Controller) AllowTermination(st *gesture.State) bool { return false }

func (c *Controller) SingleTapConfirmed(st *gesture.State) {
	if c.pageCount == 0 {
		return
	}
	if c.Hooks.SingleTapConfirmed != nil {
		c.Hooks.SingleTapConfirmed(c.currentPage)
	}
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
