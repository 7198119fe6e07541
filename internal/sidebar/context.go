package sidebar

// Context is the page-scoped sidebar UI state shared by the presenter and
// the components it renders: whether the mobile drawer is open and whether
// the desktop sidebar is collapsed.
//
// A Context is live between Mount and Unmount. Changes made while it is not
// mounted are ignored.
type Context struct {
	mounted   bool
	open      bool
	collapsed bool
}

// NewContext returns an unmounted Context.
func NewContext() *Context {
	return &Context{}
}

// Mount starts the context lifecycle with the drawer closed and the sidebar
// expanded.
func (c *Context) Mount() {
	*c = Context{mounted: true}
}

// Unmount ends the lifecycle and discards all state.
func (c *Context) Unmount() {
	*c = Context{}
}

// Mounted reports whether the context is live.
func (c *Context) Mounted() bool { return c.mounted }

// Open reports whether the mobile drawer is open.
func (c *Context) Open() bool { return c.open }

// Collapsed reports whether the desktop sidebar is collapsed.
func (c *Context) Collapsed() bool { return c.collapsed }

// SetOpen opens or closes the mobile drawer.
func (c *Context) SetOpen(open bool) {
	if c.mounted {
		c.open = open
	}
}

// SetCollapsed collapses or expands the desktop sidebar.
func (c *Context) SetCollapsed(collapsed bool) {
	if c.mounted {
		c.collapsed = collapsed
	}
}

// State is a serializable snapshot of a Context.
type State struct {
	Open      bool `json:"open"`
	Collapsed bool `json:"collapsed"`
}

// Snapshot returns the current state.
func (c *Context) Snapshot() State {
	return State{Open: c.open, Collapsed: c.collapsed}
}
