package menu

import "fmt"

// Validation helpers run once, outside the state machine's hot path. A tree
// or config that fails here never reaches the engine; runtime operations on
// unknown ids are handled separately, as silent no-ops.

// ValidateItems rejects trees with empty or duplicate ids. Identifiers must
// be unique across the whole tree since state is keyed globally by id.
func ValidateItems(items []Item) error {
	seen := make(map[string]struct{})
	var walk func(items []Item, parent string) error
	walk = func(items []Item, parent string) error {
		for _, it := range items {
			if it.ID == "" {
				return fmt.Errorf("item %q under %q has an empty id", it.Label, parent)
			}
			if _, dup := seen[it.ID]; dup {
				return fmt.Errorf("duplicate item id %q", it.ID)
			}
			seen[it.ID] = struct{}{}
			if err := walk(it.Children, it.ID); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(items, "")
}

// ValidateConfig rejects malformed option combinations after defaulting.
func ValidateConfig(cfg Config) error {
	if cfg.Mode > Horizontal {
		return fmt.Errorf("unknown mode %d", cfg.Mode)
	}
	if cfg.ExpandMode > ExpandAuto {
		return fmt.Errorf("unknown expand mode %d", cfg.ExpandMode)
	}
	if cfg.SubmenuTrigger > TriggerPopup {
		return fmt.Errorf("unknown submenu trigger %d", cfg.SubmenuTrigger)
	}
	if cfg.AnimationType > TransitionHeightCollapse {
		return fmt.Errorf("unknown animation type %d", cfg.AnimationType)
	}
	if cfg.ItemHeight <= 0 {
		return fmt.Errorf("item height must be positive, got %v", cfg.ItemHeight)
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %v", cfg.Indent)
	}
	if cfg.Breakpoint < 0 {
		return fmt.Errorf("breakpoint must not be negative, got %v", cfg.Breakpoint)
	}
	return nil
}
