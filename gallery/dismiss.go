package gallery

import (
	"time"

	"honnef.co/go/gallery/future"
	"honnef.co/go/gallery/gesture"
)

// pendingDismiss is the release of an image that waits for a dismiss action to complete.
type pendingDismiss struct {
	ft   *future.Future[struct{}]
	page int
	st   gesture.State
	// since is set by the first Update that sees the pending release.
	since time.Time
}

// releaseImage ends the image's part of a session. Releases that end in the top or bottom band of the viewport
// trigger the matching dismiss action, and the transformer isn't released until that action has completed.
func (c *Controller) releaseImage(st *gesture.State) {
	if st.DY == 0 || c.Actions == nil {
		c.image.end(st, false)
		return
	}

	height := c.viewport.Y
	band := height * c.cfg.DismissThresholdPercent / 100
	switch {
	case band <= 0:
		// No viewport yet, or the bands are disabled.
		c.Actions.PressEnd()
		c.image.end(st, false)
	case st.MoveY < band:
		c.suspendRelease(c.Actions.ScrollToTop(st.MoveY), st)
	case st.MoveY > height-band:
		c.suspendRelease(c.Actions.ScrollToBottom(st.MoveY), st)
	default:
		c.Actions.PressEnd()
		c.image.end(st, false)
	}
}

func (c *Controller) suspendRelease(ft *future.Future[struct{}], st *gesture.State) {
	if ft == nil {
		c.image.end(st, false)
		return
	}
	c.pending = &pendingDismiss{
		ft:   ft,
		page: c.currentPage,
		st:   *st,
	}
	// The action may have completed synchronously.
	c.pollDismiss()
}

func (c *Controller) pollDismiss() bool {
	p := c.pending
	if _, ok := p.ft.Result(); !ok {
		return false
	}
	c.pending = nil
	c.finishRelease(p)
	return true
}

func (c *Controller) finishRelease(p *pendingDismiss) {
	if t, ok := c.handles.lookup(p.page); ok {
		t.Release(&p.st)
	}
}

// Update finalizes a pending image release whose dismiss action has completed, or whose timeout has expired. It
// never blocks and reports whether a release is still pending.
func (c *Controller) Update(now time.Time) bool {
	if c.pending == nil {
		return false
	}
	if c.pollDismiss() {
		return false
	}
	p := c.pending
	if p.since.IsZero() {
		p.since = now
	}
	if c.cfg.DismissTimeout > 0 && now.Sub(p.since) >= c.cfg.DismissTimeout {
		c.abandonDismiss()
		return false
	}
	return true
}

// dismissDeadline returns when a pending dismiss action times out.
func (c *Controller) dismissDeadline() (time.Time, bool) {
	p := c.pending
	if p == nil || p.since.IsZero() || c.cfg.DismissTimeout <= 0 {
		return time.Time{}, false
	}
	return p.since.Add(c.cfg.DismissTimeout), true
}

// DismissPending reports whether an image release is waiting for a dismiss action.
func (c *Controller) DismissPending() bool { return c.pending != nil }

// CancelDismiss gives up on a pending dismiss action and releases the image immediately.
func (c *Controller) CancelDismiss() {
	if c.pending != nil && !c.pollDismiss() {
		c.abandonDismiss()
	}
}

func (c *Controller) abandonDismiss() {
	p := c.pending
	c.pending = nil
	p.ft.Cancel()
	c.finishRelease(p)
	if c.Hooks.DismissStalled != nil {
		c.Hooks.DismissStalled(p.page)
	}
}
