package chart

// SetHideInfo toggles the info readouts and repaints the tree when the
// value changes.
func (n *Node) SetHideInfo(hide bool) {
	link := n.tree.link
	if link.HideInfo == hide {
		return
	}
	link.HideInfo = hide
	n.Root().OnPaint(nil)
}

// SetAdjustMode switches price adjustment. Cached series were read with the
// old mode, so the fast-draw pass ends before the repaint.
func (n *Node) SetAdjustMode(mode AdjustMode) {
	link := n.tree.link
	if link.Adjust == mode {
		return
	}
	link.Adjust = mode
	n.tree.cache.End()
	n.Root().OnPaint(nil)
}

// Invalidate drops the series read in the current fast-draw pass. The
// caller repaints.
func (n *Node) Invalidate() {
	n.tree.cache.End()
}

// Zoom changes the record width by step and repaints when it changed.
func (n *Node) Zoom(step int) bool {
	if !n.tree.link.Zoom(step) {
		return false
	}
	n.Root().OnPaint(nil)
	return true
}

// ScrollBy moves the shared window by delta records over the primary series.
func (n *Node) ScrollBy(delta int) bool {
	if !n.tree.link.Scroll(delta, n.primaryTotal()) {
		return false
	}
	n.Root().OnPaint(nil)
	return true
}

func (n *Node) ScrollToLast() {
	link := n.tree.link
	if link.ShowMode == ShowLast && link.MinIndex >= 0 {
		return
	}
	link.resetWindow()
	n.Root().OnPaint(nil)
}

// LockIndex keeps record index at the locked fraction of the window.
func (n *Node) LockIndex(index int) {
	n.tree.link.Lock(index)
	n.Root().OnPaint(nil)
}

// primaryTotal is the length of the first line chart's hot series.
func (n *Node) primaryTotal() int {
	var total int
	found := false
	n.Root().walk(func(c *Node) {
		if found || c.kind != KindLine || c.hotKey == "" {
			return
		}
		found = true
		total = c.HotSeries().Len()
	})
	return total
}
