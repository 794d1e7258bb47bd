package menu

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Mode selects the primary layout axis.
type Mode uint8

const (
	// Vertical stacks all visible items top to bottom, indented by level.
	Vertical Mode = iota
	// Horizontal lays out top-level items left to right; children open as
	// flyout popups rather than inline.
	Horizontal
)

// ExpandMode controls which interaction opens a submenu.
type ExpandMode uint8

const (
	ExpandClick ExpandMode = iota
	ExpandHover
	ExpandAuto
)

// SubmenuTrigger controls how an open submenu is presented.
type SubmenuTrigger uint8

const (
	// TriggerInline renders children indented below their parent.
	TriggerInline SubmenuTrigger = iota
	// TriggerPopup renders children in a positioned flyout.
	TriggerPopup
)

// Config holds every recognized engine option. The zero value is usable;
// withDefaults fills unset numeric fields.
type Config struct {
	Mode           Mode
	ExpandMode     ExpandMode
	SubmenuTrigger SubmenuTrigger

	// Accordion collapses an expanding item's siblings at every level.
	// TopLevelExclusive applies the same rule to top-level items only.
	Accordion         bool
	TopLevelExclusive bool

	// AutoExpandParent force-expands every ancestor of a selected leaf,
	// bypassing accordion exclusivity for that one propagation.
	AutoExpandParent bool

	// CollapsedRail starts the menu in icon-only rail presentation.
	CollapsedRail bool

	Indent     float64 // horizontal offset per tree level
	ItemHeight float64 // fixed per-item height

	// VirtualScroll enables windowed rendering once the visible item count
	// crosses VirtualThreshold.
	VirtualScroll    bool
	VirtualThreshold int
	Overscan         int

	Animation         bool
	AnimationType     TransitionKind
	AnimationDuration time.Duration
	AnimationEasing   string // "linear", "ease-in", "ease-out", "ease-in-out"

	// Responsive partitions top-level items into visible/overflow buckets
	// when the container is narrower than Breakpoint.
	Responsive bool
	Breakpoint float64

	KeyboardNavigation bool

	// PopupOffset is the gap between a trigger and its flyout. PreseedExpanded
	// and PreseedSelected seed initial state at construction.
	PopupOffset     float64
	PreseedExpanded []string
	PreseedSelected string
}

// Defaults mirrored by withDefaults.
const (
	defaultIndent      = 24.0
	defaultItemHeight  = 40.0
	defaultThreshold   = 100
	defaultOverscan    = 2
	defaultBreakpoint  = 768.0
	defaultPopupOffset = 4.0
	defaultDuration    = 200 * time.Millisecond
)

// withDefaults returns cfg with zero-valued fields replaced by defaults.
func withDefaults(cfg Config) Config {
	if cfg.Indent <= 0 {
		cfg.Indent = defaultIndent
	}
	if cfg.ItemHeight <= 0 {
		cfg.ItemHeight = defaultItemHeight
	}
	if cfg.VirtualThreshold <= 0 {
		cfg.VirtualThreshold = defaultThreshold
	}
	if cfg.Overscan <= 0 {
		cfg.Overscan = defaultOverscan
	}
	if cfg.Breakpoint <= 0 {
		cfg.Breakpoint = defaultBreakpoint
	}
	if cfg.PopupOffset <= 0 {
		cfg.PopupOffset = defaultPopupOffset
	}
	if cfg.AnimationDuration <= 0 {
		cfg.AnimationDuration = defaultDuration
	}
	if cfg.AnimationType == TransitionUnset {
		cfg.AnimationType = TransitionFade
	}
	return cfg
}

// easingFor maps a config easing name to its tween function. Unknown names
// fall back to ease-out, the least jarring default for UI motion.
func easingFor(name string) ease.TweenFunc {
	switch name {
	case "linear":
		return ease.Linear
	case "ease-in":
		return ease.InQuad
	case "ease-in-out":
		return ease.InOutQuad
	default:
		return ease.OutQuad
	}
}

// Option mutates a Config in place. Used by Engine.UpdateConfig for partial
// reconfiguration.
type Option func(*Config)

// WithMode sets the layout mode.
func WithMode(m Mode) Option { return func(c *Config) { c.Mode = m } }

// WithExpandMode sets the submenu open interaction.
func WithExpandMode(m ExpandMode) Option { return func(c *Config) { c.ExpandMode = m } }

// WithSubmenuTrigger sets inline vs popup submenu presentation.
func WithSubmenuTrigger(t SubmenuTrigger) Option { return func(c *Config) { c.SubmenuTrigger = t } }

// WithAccordion toggles sibling-exclusive expansion.
func WithAccordion(on bool) Option { return func(c *Config) { c.Accordion = on } }

// WithAutoExpandParent toggles ancestor force-expansion on select.
func WithAutoExpandParent(on bool) Option { return func(c *Config) { c.AutoExpandParent = on } }

// WithIndent sets the per-level indent.
func WithIndent(px float64) Option { return func(c *Config) { c.Indent = px } }

// WithItemHeight sets the fixed per-item height.
func WithItemHeight(px float64) Option { return func(c *Config) { c.ItemHeight = px } }

// WithVirtualScroll enables windowing above the given item threshold.
func WithVirtualScroll(threshold int) Option {
	return func(c *Config) {
		c.VirtualScroll = true
		c.VirtualThreshold = threshold
	}
}

// WithAnimation enables transitions of the given kind and duration.
func WithAnimation(kind TransitionKind, d time.Duration) Option {
	return func(c *Config) {
		c.Animation = true
		c.AnimationType = kind
		c.AnimationDuration = d
	}
}

// WithResponsive enables overflow partitioning below the given breakpoint.
func WithResponsive(breakpoint float64) Option {
	return func(c *Config) {
		c.Responsive = true
		c.Breakpoint = breakpoint
	}
}

// WithKeyboardNavigation toggles the linear focus walk helpers.
func WithKeyboardNavigation(on bool) Option { return func(c *Config) { c.KeyboardNavigation = on } }
