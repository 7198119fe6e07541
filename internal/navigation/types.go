package navigation

// SDKPlaceholder is the token in configured URLs that is replaced with the
// selected SDK identifier.
const SDKPlaceholder = "${sdk}"

// NoDestination is the URL given to pages whose configuration has no url.
const NoDestination = "#"

// Tab is one SDK/framework entry of the tab switcher.
type Tab struct {
	Title       string   `yaml:"title" koanf:"title" json:"title"`
	Description string   `yaml:"description,omitempty" koanf:"description" json:"description,omitempty"`
	URL         string   `yaml:"url" koanf:"url" json:"url"`
	SDK         string   `yaml:"sdk" koanf:"sdk" json:"sdk"`
	Icon        string   `yaml:"icon,omitempty" koanf:"icon" json:"icon,omitempty"`
	Unlisted    bool     `yaml:"unlisted,omitempty" koanf:"unlisted" json:"unlisted,omitempty"`
	URLs        []string `yaml:"urls,omitempty" koanf:"urls" json:"urls,omitempty"`
}

// Item is a navigation entry. Items nest through Items and may be restricted
// to a set of SDKs.
type Item struct {
	Title       string   `yaml:"title" koanf:"title" json:"title"`
	URL         string   `yaml:"url,omitempty" koanf:"url" json:"url,omitempty"`
	Icon        string   `yaml:"icon,omitempty" koanf:"icon" json:"icon,omitempty"`
	Items       []Item   `yaml:"items,omitempty" koanf:"items" json:"items,omitempty"`
	SDK         []string `yaml:"sdk,omitempty" koanf:"sdk" json:"sdk,omitempty"`
	Collapsible bool     `yaml:"collapsible,omitempty" koanf:"collapsible" json:"collapsible,omitempty"`
	Separator   bool     `yaml:"separator,omitempty" koanf:"separator" json:"separator,omitempty"`
}

// AppliesTo reports whether the item is visible for sdk.
func (it Item) AppliesTo(sdk string) bool {
	if it.SDK == nil {
		return true
	}
	for _, s := range it.SDK {
		if s == sdk {
			return true
		}
	}
	return false
}

// Section is a top-level navigation grouping. Its identity is its index in
// the configured slice.
type Section struct {
	Title       string `yaml:"title" koanf:"title" json:"title"`
	URL         string `yaml:"url,omitempty" koanf:"url" json:"url,omitempty"`
	Icon        string `yaml:"icon,omitempty" koanf:"icon" json:"icon,omitempty"`
	Items       []Item `yaml:"items" koanf:"items" json:"items"`
	Collapsible bool   `yaml:"collapsible,omitempty" koanf:"collapsible" json:"collapsible,omitempty"`
}

// NodeType discriminates compiled nodes.
type NodeType string

const (
	NodePage      NodeType = "page"
	NodeFolder    NodeType = "folder"
	NodeSeparator NodeType = "separator"
)

// Node is a render-ready sidebar node.
//
// Page nodes carry URL; Folder nodes carry ID, Children and Collapsible;
// Separator nodes carry only Title and Icon.
type Node struct {
	Type        NodeType `json:"type"`
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	URL         string   `json:"url,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Children    []Node   `json:"children,omitempty"`
	Collapsible bool     `json:"collapsible,omitempty"`
}
