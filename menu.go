// Package menu provides a framework-agnostic menu engine: hierarchical
// expand/select state, layout computation for vertical and horizontal menus,
// viewport-aware flyout positioning, virtual windowing for large item lists,
// and cancelable enter/exit transitions. Rendering is left to thin host
// adapters that implement the collaborator interfaces in host.go.
package menu

// Item is a single node in the caller-supplied menu tree. Identifiers must be
// unique across the entire tree, not just among siblings — state and lookup
// are keyed globally by ID. The engine never mutates caller items; every
// derived structure is a freshly built copy.
type Item struct {
	ID       string
	Label    string
	Icon     string
	Badge    string
	Disabled bool
	Hidden   bool
	Children []Item
	Meta     map[string]any
}

// HasChildren reports whether the item is a branch.
func (it Item) HasChildren() bool {
	return len(it.Children) > 0
}

// FlatItem is a read-only projection of an Item with its position in the
// flattened tree. Rebuilt whenever the source tree changes.
type FlatItem struct {
	Item
	Level    int      // depth from root, 0-based
	ParentID string   // empty for top-level items
	Path     []string // ancestor ids in order, self-inclusive
	Branch   bool     // true if the source item has children
	Index    int      // position in the full flattened list
}

// treeIndex is the derived lookup structure for a menu tree: the full
// flattened item list plus parent/children/ancestor relations keyed by id.
// Built once per tree assignment so sibling and descendant queries never walk
// the original tree (which stays untouched).
type treeIndex struct {
	flat    []FlatItem
	byID    map[string]int      // id -> index into flat
	parents map[string]string   // id -> parent id ("" for roots)
	kids    map[string][]string // id -> direct child ids, document order
	roots   []string            // top-level ids, document order
}

// buildIndex flattens the tree depth-first and records relations. Items with
// duplicate or empty ids are skipped; ValidateItems reports them up front.
func buildIndex(items []Item) *treeIndex {
	idx := &treeIndex{
		byID:    make(map[string]int),
		parents: make(map[string]string),
		kids:    make(map[string][]string),
	}
	var walk func(items []Item, parent string, level int, path []string)
	walk = func(items []Item, parent string, level int, path []string) {
		for _, it := range items {
			if it.ID == "" {
				continue
			}
			if _, dup := idx.byID[it.ID]; dup {
				continue
			}
			itemPath := make([]string, len(path), len(path)+1)
			copy(itemPath, path)
			itemPath = append(itemPath, it.ID)

			fi := FlatItem{
				Item:     it,
				Level:    level,
				ParentID: parent,
				Path:     itemPath,
				Branch:   it.HasChildren(),
				Index:    len(idx.flat),
			}
			idx.byID[it.ID] = len(idx.flat)
			idx.flat = append(idx.flat, fi)
			idx.parents[it.ID] = parent
			if parent == "" {
				idx.roots = append(idx.roots, it.ID)
			} else {
				idx.kids[parent] = append(idx.kids[parent], it.ID)
			}
			if len(it.Children) > 0 {
				walk(it.Children, it.ID, level+1, itemPath)
			}
		}
	}
	walk(items, "", 0, nil)
	return idx
}

// contains reports whether id exists in the tree.
func (x *treeIndex) contains(id string) bool {
	_, ok := x.byID[id]
	return ok
}

// item returns the flat projection for id.
func (x *treeIndex) item(id string) (FlatItem, bool) {
	i, ok := x.byID[id]
	if !ok {
		return FlatItem{}, false
	}
	return x.flat[i], true
}

// branch reports whether id exists and has children.
func (x *treeIndex) branch(id string) bool {
	it, ok := x.item(id)
	return ok && it.Branch
}

// siblings returns the ids sharing id's immediate parent, excluding id
// itself. For a top-level item these are the other top-level ids.
func (x *treeIndex) siblings(id string) []string {
	parent, ok := x.parents[id]
	if !ok {
		return nil
	}
	pool := x.roots
	if parent != "" {
		pool = x.kids[parent]
	}
	out := make([]string, 0, len(pool))
	for _, sib := range pool {
		if sib != id {
			out = append(out, sib)
		}
	}
	return out
}

// ancestors returns id's ancestor ids from root downward, excluding id.
func (x *treeIndex) ancestors(id string) []string {
	it, ok := x.item(id)
	if !ok {
		return nil
	}
	return it.Path[:len(it.Path)-1]
}

// descendants returns every id below id in the tree, depth-first.
func (x *treeIndex) descendants(id string) []string {
	var out []string
	var walk func(id string)
	walk = func(id string) {
		for _, kid := range x.kids[id] {
			out = append(out, kid)
			walk(kid)
		}
	}
	walk(id)
	return out
}
