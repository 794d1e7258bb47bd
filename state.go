package menu

import "fmt"

// State mutators. Every mutator is synchronous: the emitted event reflects
// state that is already updated by the time handlers run, and events fire in
// call order with no coalescing. Operations on ids absent from the current
// tree are silent no-ops — trees are highly mutable at runtime and a stale id
// is not an error.

// Expand opens the submenu of id. No-op if id is absent, is a leaf, or is
// already open. With Accordion (any level) or TopLevelExclusive (root level)
// set, expanding first collapses every open sibling of id, cascading through
// the siblings' descendants.
func (e *Engine) Expand(id string) {
	it, ok := e.index.item(id)
	if !ok || !it.Branch {
		return
	}
	if e.isExpanded(id) {
		return
	}

	var closed []string
	if e.cfg.Accordion || (e.cfg.TopLevelExclusive && it.Level == 0) {
		for _, sib := range e.index.siblings(id) {
			closed = append(closed, e.collapseBranch(sib)...)
		}
	}
	e.expanded[id] = struct{}{}

	e.events.emit(Event{Type: EventOpenChange, ID: id, Open: true, Closed: closed})
}

// Collapse closes the submenu of id and every open descendant below it, so
// re-expanding the branch never reveals stale open grandchildren. No-op if id
// is not open.
func (e *Engine) Collapse(id string) {
	removed := e.collapseBranch(id)
	if len(removed) == 0 {
		return
	}
	e.events.emit(Event{Type: EventCollapse, ID: id, Closed: removed})
}

// ToggleExpand expands id if closed, collapses it if open.
func (e *Engine) ToggleExpand(id string) {
	if e.isExpanded(id) {
		e.Collapse(id)
	} else {
		e.Expand(id)
	}
}

// Select makes id the active item. No-op if id is absent or disabled. A
// branch is not independently selectable — selecting it navigates, so the
// call is redefined as ToggleExpand. For a leaf, the selection is recorded
// and, with AutoExpandParent set, every ancestor is force-expanded; this
// propagation bypasses accordion exclusivity because the caller explicitly
// asked to reveal the path.
func (e *Engine) Select(id string) {
	it, ok := e.index.item(id)
	if !ok || it.Disabled {
		return
	}
	if it.Branch {
		e.ToggleExpand(id)
		return
	}

	e.selected = id
	if e.cfg.AutoExpandParent {
		for _, anc := range e.index.ancestors(id) {
			if e.index.branch(anc) {
				e.expanded[anc] = struct{}{}
			}
		}
	}
	e.events.emit(Event{Type: EventSelect, ID: id})
}

// Hover records id as the hovered item and notifies subscribers. No-op for
// unknown ids.
func (e *Engine) Hover(id string) {
	if !e.index.contains(id) {
		return
	}
	e.hovered = id
	e.events.emit(Event{Type: EventHover, ID: id})
}

// SetCollapsedRail switches the whole-menu icon-only presentation. Rail mode
// is orthogonal to the expanded set: toggling it never changes which
// submenus are logically open.
func (e *Engine) SetCollapsedRail(collapsed bool) {
	if e.rail == collapsed {
		return
	}
	e.rail = collapsed
	e.events.emit(Event{Type: EventCollapsedChange, Collapsed: collapsed})
}

// SetItems replaces the menu tree. Expanded ids are pruned to those that
// still exist and still have children; the selection is cleared if its id no
// longer resolves to a leaf. Consumers are expected to re-query after a tree
// swap, so no event is emitted.
func (e *Engine) SetItems(items []Item) {
	e.items = cloneItems(items)
	e.index = buildIndex(e.items)

	for id := range e.expanded {
		if !e.index.branch(id) {
			delete(e.expanded, id)
		}
	}
	if e.selected != "" {
		if it, ok := e.index.item(e.selected); !ok || it.Branch {
			e.selected = ""
		}
	}
	if e.hovered != "" && !e.index.contains(e.hovered) {
		e.hovered = ""
	}
}

// UpdateConfig applies partial reconfiguration. The result passes through
// the same validation as New; on failure the previous configuration stays in
// effect. Enabling Accordion or TopLevelExclusive reconciles an expanded set
// that predates the exclusivity rule.
func (e *Engine) UpdateConfig(opts ...Option) error {
	next := e.cfg
	for _, opt := range opts {
		opt(&next)
	}
	next = withDefaults(next)
	if err := ValidateConfig(next); err != nil {
		return fmt.Errorf("menu: invalid config: %w", err)
	}

	prev := e.cfg
	e.cfg = next
	switch {
	case next.Accordion && !prev.Accordion:
		e.reconcileExclusive(false)
	case next.TopLevelExclusive && !prev.TopLevelExclusive:
		e.reconcileExclusive(true)
	}
	return nil
}

// reconcileExclusive collapses all but the first open branch of each sibling
// group, in document order, so a newly enabled exclusivity rule starts from
// a state Expand could have produced. Collapses cascade and emit as usual.
func (e *Engine) reconcileExclusive(topOnly bool) {
	var walk func(ids []string)
	walk = func(ids []string) {
		kept := false
		for _, id := range ids {
			if e.isExpanded(id) {
				if kept {
					e.Collapse(id)
					continue
				}
				kept = true
			}
		}
		if topOnly {
			return
		}
		for _, id := range ids {
			walk(e.index.kids[id])
		}
	}
	walk(e.index.roots)
}

// collapseBranch removes id and every descendant of id from the expanded
// set, returning the ids actually removed.
func (e *Engine) collapseBranch(id string) []string {
	var removed []string
	if e.isExpanded(id) {
		delete(e.expanded, id)
		removed = append(removed, id)
	}
	for _, desc := range e.index.descendants(id) {
		if e.isExpanded(desc) {
			delete(e.expanded, desc)
			removed = append(removed, desc)
		}
	}
	return removed
}

func (e *Engine) isExpanded(id string) bool {
	_, ok := e.expanded[id]
	return ok
}

// cloneItems deep-copies a caller tree so later caller mutations cannot
// alias engine state.
func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Children = cloneItems(it.Children)
		if it.Meta != nil {
			meta := make(map[string]any, len(it.Meta))
			for k, v := range it.Meta {
				meta[k] = v
			}
			out[i].Meta = meta
		}
	}
	return out
}
