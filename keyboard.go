package menu

// Keyboard traversal is a simple linear walk over the visible flat items,
// skipping disabled entries and wrapping at the ends. Adapters gate these on
// Config.KeyboardNavigation and feed the result back into Hover or Select.

// NextItem returns the id of the focusable item after current in document
// order, wrapping past the end. With an empty or unknown current id the walk
// starts from the top. Returns empty when nothing is focusable.
func (e *Engine) NextItem(current string) string {
	return e.walk(current, 1)
}

// PrevItem returns the id of the focusable item before current, wrapping
// before the start.
func (e *Engine) PrevItem(current string) string {
	return e.walk(current, -1)
}

func (e *Engine) walk(current string, dir int) string {
	visible := e.VisibleItems()
	if len(visible) == 0 {
		return ""
	}

	start := -1
	for i, it := range visible {
		if it.ID == current {
			start = i
			break
		}
	}
	if start == -1 {
		if dir < 0 {
			start = len(visible)
		} else {
			start = -1
		}
	}

	n := len(visible)
	for step := 1; step <= n; step++ {
		i := ((start+dir*step)%n + n) % n
		if !visible[i].Disabled {
			return visible[i].ID
		}
	}
	return ""
}
