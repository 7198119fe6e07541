package sidebar

import (
	"strconv"
	"strings"

	"github.com/ternsecure/docsite/internal/navigation"
)

// Presenter derives what the sidebar shows for the current pathname and
// tracks the little UI state that is not derivable from it: the pinned
// section, the open flag of collapsible sections, and folder toggles.
//
// A Presenter is owned by a single goroutine.
type Presenter struct {
	ctx      *Context
	tabs     []navigation.Tab
	sections []navigation.Section
	pathname string

	selection   Selection
	sectionOpen map[int]bool
	folderOpen  map[string]bool
	compiled    map[compileKey][]navigation.Node
}

type compileKey struct {
	section int
	sdk     string
}

// NewPresenter creates a presenter over the given configuration. ctx may be
// nil, in which case a fresh mounted Context is used.
func NewPresenter(ctx *Context, tabs []navigation.Tab, sections []navigation.Section) *Presenter {
	if ctx == nil {
		ctx = NewContext()
		ctx.Mount()
	}
	p := &Presenter{ctx: ctx}
	p.SetConfig(tabs, sections)
	return p
}

// Context returns the sidebar UI context the presenter renders with.
func (p *Presenter) Context() *Context { return p.ctx }

// SetConfig replaces tabs and sections. Section indexes are not stable
// across configurations, so the pin and every open-state override are
// dropped.
func (p *Presenter) SetConfig(tabs []navigation.Tab, sections []navigation.Section) {
	p.tabs = tabs
	p.sections = sections
	p.selection = p.selection.Clear()
	p.sectionOpen = make(map[int]bool)
	p.folderOpen = make(map[string]bool)
	p.compiled = make(map[compileKey][]navigation.Node)
}

// Navigate records a path change. Tab and section are re-derived on the
// next View; a pinned section stays pinned.
func (p *Presenter) Navigate(pathname string) {
	p.pathname = pathname
}

// Pathname returns the current pathname.
func (p *Presenter) Pathname() string { return p.pathname }

// Selection returns the current selection state.
func (p *Presenter) Selection() Selection { return p.selection }

// Pin shows the items of section index regardless of the pathname.
// Out-of-range indexes are ignored.
func (p *Presenter) Pin(index int) {
	if index < 0 || index >= len(p.sections) {
		return
	}
	p.selection = p.selection.Pin(index)
}

// ClickSection handles a click on a top-level entry. A non-collapsible entry
// is a link, so the pin is cleared and the section follows the pathname
// again. A collapsible entry only toggles its own disclosure.
func (p *Presenter) ClickSection(index int) {
	if index < 0 || index >= len(p.sections) {
		return
	}
	if !p.sections[index].Collapsible {
		p.selection = p.selection.Clear()
		return
	}
	p.sectionOpen[index] = !p.isSectionOpen(index, p.currentSection())
}

// ToggleFolder flips the open state of the folder with the given key, as
// reported in NodeView.Key. Unknown keys are ignored.
func (p *Presenter) ToggleFolder(key string) {
	section, id, ok := splitFolderKey(key)
	if !ok || section >= len(p.sections) {
		return
	}
	var folder *navigation.Node
	navigation.Walk(p.compile(section, p.sdk()), func(n navigation.Node) bool {
		if folder == nil && n.Type == navigation.NodeFolder && n.ID == id {
			f := n
			folder = &f
		}
		return folder == nil
	})
	if folder == nil {
		return
	}
	p.folderOpen[key] = !p.isFolderOpen(key, folder.Children)
}

// SetFolderOpen sets the open state of the folder with the given key.
func (p *Presenter) SetFolderOpen(key string, open bool) {
	p.folderOpen[key] = open
}

func (p *Presenter) selectedTab() (navigation.Tab, bool) {
	return navigation.SelectTab(p.tabs, p.pathname)
}

// sdk is the selected tab's SDK, or empty when there are no tabs.
func (p *Presenter) sdk() string {
	tab, _ := p.selectedTab()
	return tab.SDK
}

func (p *Presenter) currentSection() int {
	return navigation.SelectSection(p.sections, p.pathname, p.sdk())
}

// compile returns the memoized compiled items of section index for sdk.
func (p *Presenter) compile(index int, sdk string) []navigation.Node {
	key := compileKey{section: index, sdk: sdk}
	if nodes, ok := p.compiled[key]; ok {
		return nodes
	}
	nodes := navigation.Compile(p.sections[index].Items, sdk)
	p.compiled[key] = nodes
	return nodes
}

func (p *Presenter) isSectionOpen(index, current int) bool {
	if open, ok := p.sectionOpen[index]; ok {
		return open
	}
	return index == current
}

func (p *Presenter) isFolderOpen(key string, children []navigation.Node) bool {
	if open, ok := p.folderOpen[key]; ok {
		return open
	}
	return navigation.ContainsActive(children, p.pathname)
}

// View derives the full sidebar state for the current pathname.
func (p *Presenter) View() View {
	tab, hasTab := p.selectedTab()
	sdk := tab.SDK
	current := navigation.SelectSection(p.sections, p.pathname, sdk)
	display := p.selection.Resolve(current)

	v := View{
		Pathname:       p.pathname,
		SDK:            sdk,
		Mode:           p.selection.Mode().String(),
		CurrentSection: current,
		DisplaySection: display,
		Sidebar:        p.ctx.Snapshot(),
		Tabs:           p.tabViews(tab, hasTab),
		Entries:        make([]Entry, 0, len(p.sections)),
		Body:           []NodeView{},
	}
	if hasTab {
		t := tab
		v.Tab = &t
	}

	for i, sec := range p.sections {
		entry := Entry{
			Index:       i,
			Title:       sec.Title,
			URL:         navigation.NoDestination,
			Icon:        sec.Icon,
			Active:      i == current,
			Collapsible: sec.Collapsible,
		}
		if sec.URL != "" {
			entry.URL = navigation.ResolveURL(sec.URL, sdk)
		}
		if sec.Collapsible {
			entry.Open = p.isSectionOpen(i, current)
			entry.Nodes = p.nodeViews(i, p.compile(i, sdk))
		}
		v.Entries = append(v.Entries, entry)
	}

	bodyIndex := display
	if bodyIndex == -1 {
		bodyIndex = 0
	}
	if bodyIndex < len(p.sections) {
		collapsible := display != -1 && p.sections[display].Collapsible
		if !collapsible {
			v.Body = p.nodeViews(bodyIndex, p.compile(bodyIndex, sdk))
		}
	}
	return v
}

// tabViews lists the tabs offered by the switcher. Unlisted tabs are shown
// only while selected.
func (p *Presenter) tabViews(selected navigation.Tab, hasTab bool) []TabView {
	views := make([]TabView, 0, len(p.tabs))
	for _, tab := range p.tabs {
		active := hasTab && tab.URL == selected.URL
		if tab.Unlisted && !active {
			continue
		}
		views = append(views, TabView{Tab: tab, Active: active})
	}
	return views
}

func (p *Presenter) nodeViews(section int, nodes []navigation.Node) []NodeView {
	views := make([]NodeView, 0, len(nodes))
	for _, n := range nodes {
		nv := NodeView{
			Type:  n.Type,
			Title: n.Title,
			URL:   n.URL,
			Icon:  n.Icon,
		}
		switch n.Type {
		case navigation.NodePage:
			nv.Active = n.URL == p.pathname
		case navigation.NodeFolder:
			nv.Key = folderKey(section, n.ID)
			nv.Collapsible = n.Collapsible
			nv.Open = p.isFolderOpen(nv.Key, n.Children)
			nv.Children = p.nodeViews(section, n.Children)
		}
		views = append(views, nv)
	}
	return views
}

// folderKey qualifies a folder ID with its section, since IDs are only
// unique within one compiled section.
func folderKey(section int, id string) string {
	return strconv.Itoa(section) + ":" + id
}

func splitFolderKey(key string) (section int, id string, ok bool) {
	idx, id, found := strings.Cut(key, ":")
	if !found || id == "" {
		return 0, "", false
	}
	section, err := strconv.Atoi(idx)
	if err != nil || section < 0 {
		return 0, "", false
	}
	return section, id, true
}
