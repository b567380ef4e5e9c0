package gallery

// handles maps page indices to the transformers of mounted pages. Entries are overwritten when a page remounts and
// otherwise stay until the page count changes back to include them; stale entries are tolerated.
type handles struct {
	byPage map[int]Transformer
	// limit is the current page count. Lookups outside [0, limit) find nothing.
	limit int
}

func (h *handles) setLimit(n int) {
	h.limit = max(n, 0)
}

// mount registers t for page. Pages at or beyond the current limit are kept, so that transformers may be mounted
// before the page count is known. A nil t removes the page.
func (h *handles) mount(page int, t Transformer) {
	if page < 0 {
		return
	}
	if t == nil {
		delete(h.byPage, page)
		return
	}
	if h.byPage == nil {
		h.byPage = make(map[int]Transformer)
	}
	h.byPage[page] = t
}

func (h *handles) lookup(page int) (Transformer, bool) {
	if page < 0 || page >= h.limit {
		return nil, false
	}
	t, ok := h.byPage[page]
	return t, ok
}
