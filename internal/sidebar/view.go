package sidebar

import "github.com/ternsecure/docsite/internal/navigation"

// View is everything the rendering layer needs to draw the sidebar for one
// pathname.
type View struct {
	Pathname string          `json:"pathname"`
	Tab      *navigation.Tab `json:"tab,omitempty"`
	SDK      string          `json:"sdk"`
	Tabs     []TabView       `json:"tabs"`
	Mode     string          `json:"mode"`

	// CurrentSection is matched from the pathname and drives highlighting.
	CurrentSection int `json:"current_section"`
	// DisplaySection is the pinned section, or CurrentSection when unpinned.
	DisplaySection int `json:"display_section"`

	Entries []Entry    `json:"entries"`
	Body    []NodeView `json:"body"`
	Sidebar State      `json:"sidebar"`
}

// TabView is a tab as offered by the tab switcher.
type TabView struct {
	navigation.Tab
	Active bool `json:"active"`
}

// Entry is a top-level section in the entry list above the body.
// Collapsible entries carry their own compiled nodes.
type Entry struct {
	Index       int        `json:"index"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Icon        string     `json:"icon,omitempty"`
	Active      bool       `json:"active"`
	Collapsible bool       `json:"collapsible"`
	Open        bool       `json:"open,omitempty"`
	Nodes       []NodeView `json:"nodes,omitempty"`
}

// NodeView is a compiled node annotated with its active and open state.
type NodeView struct {
	Type        navigation.NodeType `json:"type"`
	Key         string              `json:"key,omitempty"`
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	Active      bool                `json:"active,omitempty"`
	Collapsible bool                `json:"collapsible,omitempty"`
	Open        bool                `json:"open,omitempty"`
	Children    []NodeView          `json:"children,omitempty"`
}

// HasBody reports whether the body list has anything to show.
func (v View) HasBody() bool { return len(v.Body) > 0 }
