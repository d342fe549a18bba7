package menu

import (
	"strings"

	"github.com/softvoice/menuvox/internal/nav"
)

// Node represents a menu definition within the registry tree. A node with a
// Loader is expandable; a node with a Field is editable; a node with a Grid
// is navigated two-dimensionally; a node with only an Action is a plain
// leaf.
type Node struct {
	ID         string
	Loader     Loader
	Action     Action
	Field      FieldProvider
	Info       InfoProvider
	Grid       GridLoader
	GridAction GridAction
	Policy     nav.MatchPolicy
	Children   map[string]*Node
	// Dynamic handles children whose identities come from host data
	// rather than static registration, e.g. setting categories.
	Dynamic *Node
}

// Expandable reports whether drilling into the node makes sense.
func (n *Node) Expandable() bool {
	return n != nil && (n.Loader != nil || n.Grid != nil)
}

// Registry exposes lookup utilities for menu definitions.
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

// NewRegistry assembles a registry from the given nodes. Node IDs encode
// tree position with colons: "settings:rate" registers under "settings".
// A node named "root" becomes the registry root; one is created if absent.
func NewRegistry(list ...*Node) *Registry {
	nodes := make(map[string]*Node, len(list)+1)
	for _, node := range list {
		if node.Children == nil {
			node.Children = make(map[string]*Node)
		}
		nodes[node.ID] = node
	}
	root, ok := nodes["root"]
	if !ok {
		root = &Node{ID: "root", Children: make(map[string]*Node)}
		nodes["root"] = root
	}
	for id, node := range nodes {
		if id == "root" {
			continue
		}
		parentID, key := parentKey(id)
		if parent, ok := nodes[parentID]; ok {
			parent.Children[key] = node
		}
	}
	return &Registry{root: root, nodes: nodes}
}

// BuildRegistry constructs the demo menu tree.
func BuildRegistry() *Registry {
	nodes := make(map[string]*Node)

	ensure := func(id string) *Node {
		if node, ok := nodes[id]; ok {
			return node
		}
		node := &Node{ID: id, Children: make(map[string]*Node)}
		nodes[id] = node
		return node
	}

	root := ensure("root")
	root.Loader = func(Context, Item) ([]Item, error) { return RootItems(), nil }

	plugins := ensure("plugins")
	plugins.Loader = loadPluginsMenu
	plugins.Policy = nav.MatchSubstring
	plugins.Dynamic = &Node{
		ID:     "plugins:entry",
		Action: PluginToggleAction,
		Info:   pluginInfo,
	}

	settings := ensure("settings")
	settings.Loader = loadSettingsMenu
	settings.Dynamic = &Node{
		ID:     "settings:category",
		Loader: loadSettingsCategoryMenu,
		Dynamic: &Node{
			ID:    "settings:field",
			Field: settingField,
			Info:  settingInfo,
		},
	}

	priorities := ensure("priorities")
	priorities.Grid = loadPriorityGrid
	priorities.GridAction = PriorityCycleAction

	for id, node := range nodes {
		if id == "root" {
			continue
		}
		parentID, key := parentKey(id)
		parent := ensure(parentID)
		parent.Children[key] = node
	}

	return &Registry{root: root, nodes: nodes}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Find locates a statically registered node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Resolve returns the node governing the given child item of parent,
// falling back to the parent's dynamic template.
func (r *Registry) Resolve(parent *Node, item Item) (*Node, bool) {
	if parent == nil {
		return nil, false
	}
	if child, ok := parent.Children[item.ID]; ok {
		return child, true
	}
	if parent.Dynamic != nil {
		return parent.Dynamic, true
	}
	return nil, false
}

func parentKey(id string) (string, string) {
	if id == "" {
		return "root", ""
	}
	if !strings.Contains(id, ":") {
		return "root", id
	}
	idx := strings.LastIndex(id, ":")
	return id[:idx], id[idx+1:]
}
