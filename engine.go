package menu

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNoMountTarget is returned when the engine is asked to attach to, or
// insert into, a container the host does not know. It is the only failure
// that surfaces as an error — continuing would silently do nothing useful.
var ErrNoMountTarget = errors.New("menu: mount target does not exist")

// Engine owns the canonical menu state and orchestrates layout, popup
// positioning and transitions around it. All methods are intended for a
// single goroutine, typically the host's event loop; mutators are
// synchronous and their events fire before the mutator returns.
type Engine struct {
	cfg   Config
	items []Item
	index *treeIndex

	expanded map[string]struct{}
	selected string
	hovered  string
	rail     bool

	events *emitter
	log    *slog.Logger

	host      Host
	container Element
	popups    *popupSet
	motion    *Transitions

	// scroll snapshot for windowing, pushed by the adapter
	scrollOffset   float64
	viewportExtent float64

	detach   []func()
	attached bool
	closed   bool
}

// New builds an engine for the given tree and configuration. The tree and
// config are validated up front; the caller's tree is copied, never aliased.
func New(items []Item, cfg Config) (*Engine, error) {
	if err := ValidateItems(items); err != nil {
		return nil, fmt.Errorf("menu: invalid items: %w", err)
	}
	cfg = withDefaults(cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("menu: invalid config: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		items:    cloneItems(items),
		expanded: make(map[string]struct{}),
		rail:     cfg.CollapsedRail,
		log:      slog.Default(),
		popups:   newPopupSet(),
	}
	e.index = buildIndex(e.items)
	e.events = newEmitter(e.log)

	for _, id := range cfg.PreseedExpanded {
		if e.index.branch(id) {
			e.expanded[id] = struct{}{}
		}
	}
	if id := cfg.PreseedSelected; id != "" {
		if it, ok := e.index.item(id); ok && !it.Branch && !it.Disabled {
			e.selected = id
		}
	}
	return e, nil
}

// SetLogger replaces the logger used for handler-failure reports.
func (e *Engine) SetLogger(log *slog.Logger) {
	if log == nil {
		return
	}
	e.log = log
	e.events.log = log
}

// Subscribe registers fn for events of type t and returns an unsubscribe
// handle.
func (e *Engine) Subscribe(t EventType, fn func(Event)) func() {
	return e.events.on(t, fn)
}

// Attach connects the engine to its host and installs the global dismissal
// listeners: outside pointer-down closes the hit popup, Escape closes the
// most recent, scroll and resize reposition every open popup. One listener
// set exists per engine regardless of how many popups open later; the
// removers are retained for Close. Attaching twice is a no-op.
func (e *Engine) Attach(host Host, container Element) error {
	if e.attached {
		return nil
	}
	if host == nil || container == nil {
		return ErrNoMountTarget
	}
	e.host = host
	e.container = container
	e.motion = NewTransitions(host, host)

	e.detach = append(e.detach,
		host.Listen(GlobalPointerDown, e.dismissAt),
		host.Listen(GlobalEscape, func(Point) { e.CloseTopPopup() }),
		host.Listen(GlobalScroll, func(Point) { e.RepositionPopups() }),
		host.Listen(GlobalResize, func(Point) { e.RepositionPopups() }),
	)
	e.attached = true
	return nil
}

// Close tears the engine down: global listeners are removed exactly once,
// every open popup is destroyed (firing each close callback once) and
// in-flight transitions are canceled.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true

	for _, remove := range e.detach {
		remove()
	}
	e.detach = nil

	for _, rec := range e.popups.all() {
		e.popups.removeID(rec.ID)
		if e.host != nil {
			e.host.Remove(rec.Element)
		}
	}
	if e.motion != nil {
		e.motion.CancelAll()
	}
	e.attached = false
}

// --- queries ---

// Config returns the current configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Items returns the full flattened tree, document order, including items
// under collapsed branches.
func (e *Engine) Items() []FlatItem {
	out := make([]FlatItem, len(e.index.flat))
	copy(out, e.index.flat)
	return out
}

// VisibleItems returns the flat items currently presentable: not hidden,
// every ancestor expanded.
func (e *Engine) VisibleItems() []FlatItem {
	return visibleFlat(e.index, e.expanded)
}

// Layout computes positions and aggregate size for the visible items. When
// virtual windowing is active the item list and positions are restricted to
// the window range; Total still covers the whole list so scrollbars keep
// their extent.
func (e *Engine) Layout() LayoutResult {
	visible := e.VisibleItems()
	res := computeLayout(visible, e.cfg)

	if w := computeWindow(len(res.Items), e.cfg, e.scrollOffset, e.viewportExtent); w.Active {
		windowed := res.Items[w.Start : w.End+1]
		positions := make(map[string]Point, len(windowed))
		for _, it := range windowed {
			positions[it.ID] = res.Positions[it.ID]
		}
		res.Items = windowed
		res.Positions = positions
	}
	return res
}

// Window returns the current visible index range over the visible items.
func (e *Engine) Window() Window {
	return computeWindow(len(e.VisibleItems()), e.cfg, e.scrollOffset, e.viewportExtent)
}

// SetScroll records the adapter's scroll snapshot used by windowing.
func (e *Engine) SetScroll(offset, viewportExtent float64) {
	e.scrollOffset = offset
	e.viewportExtent = viewportExtent
}

// ResponsiveItems partitions top-level items into visible and overflow
// buckets for the given container width. With Responsive unset or the width
// at or above the breakpoint, everything is visible.
func (e *Engine) ResponsiveItems(containerWidth float64) Partition {
	var top []FlatItem
	for _, it := range e.VisibleItems() {
		if it.Level == 0 {
			top = append(top, it)
		}
	}
	return responsiveSplit(top, e.cfg, containerWidth)
}

// ExpandedKeys returns the open branch ids in document order.
func (e *Engine) ExpandedKeys() []string {
	out := make([]string, 0, len(e.expanded))
	for _, it := range e.index.flat {
		if _, ok := e.expanded[it.ID]; ok {
			out = append(out, it.ID)
		}
	}
	return out
}

// IsExpanded reports whether id's submenu is open.
func (e *Engine) IsExpanded(id string) bool {
	return e.isExpanded(id)
}

// SelectedKey returns the active leaf id, or empty.
func (e *Engine) SelectedKey() string {
	return e.selected
}

// HoveredKey returns the last hovered id, or empty.
func (e *Engine) HoveredKey() string {
	return e.hovered
}

// CollapsedRail reports whether the menu is in icon-only rail mode.
func (e *Engine) CollapsedRail() bool {
	return e.rail
}

// --- popups ---

// OpenPopup mounts el as a flyout for trigger and positions it. The element
// is inserted hidden, measured one frame later, placed with flip/clamp
// resolution, then revealed through the configured transition. onClose is
// invoked exactly once when the popup is destroyed, whatever the cause.
func (e *Engine) OpenPopup(id string, el, trigger Element, placement Placement, onClose func()) (*PopupRecord, error) {
	if !e.attached {
		return nil, ErrNoMountTarget
	}

	// an id fronts at most one flyout: re-opening destroys the old popup
	// first, with full close semantics (callback, exit, element removal)
	e.ClosePopup(id)

	if !e.host.Insert(el, e.container) {
		return nil, ErrNoMountTarget
	}

	rec := &PopupRecord{
		ID:        id,
		Element:   el,
		Trigger:   trigger,
		Requested: placement,
		onClose:   onClose,
	}
	e.popups.add(rec)

	e.host.NextFrame(func() {
		if e.popups.records[id] != rec {
			return // closed or replaced before it could be measured
		}
		rec.Resolved = e.resolveFor(rec)
		e.host.Move(el, rec.Resolved.Pos)
		e.motion.Start(el, e.revealSpec(rec.Resolved, true))
	})
	return rec, nil
}

// ClosePopup destroys the popup with the given id: it leaves the registry
// immediately, its close callback fires, the exit transition runs and the
// element is removed when the transition finishes. Unknown ids are ignored.
// Ancestor popups stay open.
func (e *Engine) ClosePopup(id string) {
	rec := e.popups.removeID(id)
	if rec == nil {
		return
	}
	tr := e.motion.Start(rec.Element, e.revealSpec(rec.Resolved, false))
	el := rec.Element
	if tr.tween == nil {
		// no animation configured: the transition completed synchronously
		e.host.Remove(el)
		return
	}
	tr.onDone = func(bool) {
		e.host.Remove(el)
	}
}

// CloseTopPopup closes the most recently opened popup, if any. This is the
// Escape behavior: one pop per press, LIFO.
func (e *Engine) CloseTopPopup() {
	if top := e.popups.top(); top != nil {
		e.ClosePopup(top.ID)
	}
}

// RepositionPopups re-resolves and re-places every open popup against fresh
// geometry. Called on scroll and resize; never closes anything.
func (e *Engine) RepositionPopups() {
	for _, rec := range e.popups.all() {
		rec.Resolved = e.resolveFor(rec)
		e.host.Move(rec.Element, rec.Resolved.Pos)
	}
}

// OpenPopups returns snapshots of the open flyouts, oldest first.
func (e *Engine) OpenPopups() []PopupRecord {
	recs := e.popups.all()
	out := make([]PopupRecord, len(recs))
	for i, r := range recs {
		out[i] = *r
		out[i].onClose = nil
	}
	return out
}

// PopupOpen reports whether id has an open flyout.
func (e *Engine) PopupOpen(id string) bool {
	_, ok := e.popups.records[id]
	return ok
}

// Step advances in-flight transitions by dt. Hosts call this once per
// rendering frame; it returns the number still running so the host can stop
// ticking when idle.
func (e *Engine) Step(dt time.Duration) int {
	if e.motion == nil {
		return 0
	}
	return e.motion.Step(dt)
}

// Motion exposes the transition controller for adapters that animate
// elements outside the popup lifecycle (inline submenu height transitions).
func (e *Engine) Motion() *Transitions {
	return e.motion
}

// resolveFor measures current geometry and resolves a record's placement.
func (e *Engine) resolveFor(rec *PopupRecord) Resolved {
	trigger := e.host.BoundsOf(rec.Trigger)
	popup := e.host.BoundsOf(rec.Element).Size()
	return ResolvePlacement(trigger, popup, e.host.Viewport(), rec.Requested, e.cfg.PopupOffset)
}

// revealSpec builds the enter or exit transition for a resolved placement.
func (e *Engine) revealSpec(res Resolved, enter bool) TransitionSpec {
	kind := TransitionNone
	if e.cfg.Animation {
		kind = e.cfg.AnimationType
	}
	return TransitionSpec{
		Kind:     kind,
		Enter:    enter,
		Duration: e.cfg.AnimationDuration,
		Easing:   easingFor(e.cfg.AnimationEasing),
		From:     res.Placement.Side(),
	}
}

// dismissAt implements the shared outside-press policy: any popup whose
// element and trigger both miss the press point is closed. Checked newest
// first so nested flyouts collapse from the leaf inward.
func (e *Engine) dismissAt(at Point) {
	recs := e.popups.all()
	for i := len(recs) - 1; i >= 0; i-- {
		rec := recs[i]
		inPopup := e.host.BoundsOf(rec.Element).Contains(at)
		inTrigger := e.host.BoundsOf(rec.Trigger).Contains(at)
		if !inPopup && !inTrigger {
			e.ClosePopup(rec.ID)
		}
	}
}
