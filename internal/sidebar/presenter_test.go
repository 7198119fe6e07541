package sidebar

import (
	"strings"
	"testing"

	"github.com/ternsecure/docsite/internal/navigation"
)

var testTabs = []navigation.Tab{
	{Title: "Next.js", URL: "/docs/nextjs", SDK: "nextjs"},
	{Title: "React", URL: "/docs/react", SDK: "react"},
}

var testSections = []navigation.Section{
	{
		Title: "Getting Started",
		URL:   "/docs/getting-started/installation",
		Items: []navigation.Item{
			{Title: "Installation", URL: "/docs/getting-started/installation"},
			{Title: "Configuration", URL: "/docs/${sdk}/configuration"},
		},
	},
	{
		Title: "Guides",
		URL:   "/docs/guides/overview",
		Items: []navigation.Item{
			{Title: "Overview", URL: "/docs/guides/overview"},
			{Title: "Authentication Flows", Collapsible: true, Items: []navigation.Item{
				{Title: "Custom Sign-In", URL: "/docs/guides/authentication-flows/custom-sign-in"},
				{Title: "Custom Sign-Up", URL: "/docs/guides/authentication-flows/custom-sign-up"},
			}},
		},
	},
	{
		Title: "Firebase",
		URL:   "/docs/firebase/overview",
		Items: []navigation.Item{
			{Title: "Overview", URL: "/docs/firebase/overview"},
			{Title: "Initialize", URL: "/docs/firebase/initialize"},
		},
	},
	{
		Title:       "API Reference",
		Collapsible: true,
		Items: []navigation.Item{
			{Title: "ternSecureProxy()", URL: "/docs/reference/proxy"},
		},
	},
}

func newTestPresenter(pathname string) *Presenter {
	p := NewPresenter(nil, testTabs, testSections)
	p.Navigate(pathname)
	return p
}

func bodyTitles(v View) []string {
	var out []string
	for _, n := range v.Body {
		out = append(out, n.Title)
	}
	return out
}

func TestViewDerivesFromPathname(t *testing.T) {
	v := newTestPresenter("/docs/firebase/initialize").View()

	if v.Tab == nil || v.Tab.SDK != "nextjs" {
		t.Fatalf("tab = %+v, want fallback nextjs tab", v.Tab)
	}
	if v.CurrentSection != 2 || v.DisplaySection != 2 {
		t.Errorf("sections current=%d display=%d, want 2/2", v.CurrentSection, v.DisplaySection)
	}
	if !v.Entries[2].Active {
		t.Error("Firebase entry should be active")
	}
	if got := strings.Join(bodyTitles(v), ","); got != "Overview,Initialize" {
		t.Errorf("body = %s, want Firebase items", got)
	}
	if !v.Body[1].Active {
		t.Error("Initialize page should be marked active")
	}
}

func TestViewResolvesSDKFromTab(t *testing.T) {
	v := newTestPresenter("/docs/react/configuration").View()
	if v.SDK != "react" {
		t.Fatalf("sdk = %q, want react", v.SDK)
	}
	if v.CurrentSection != 0 {
		t.Errorf("current section = %d, want 0", v.CurrentSection)
	}
	if v.Body[1].URL != "/docs/react/configuration" {
		t.Errorf("configuration url = %q, want resolved react url", v.Body[1].URL)
	}
}

func TestViewNoMatchShowsFirstSection(t *testing.T) {
	v := newTestPresenter("/unrelated").View()
	if v.CurrentSection != -1 || v.DisplaySection != -1 {
		t.Errorf("sections current=%d display=%d, want -1/-1", v.CurrentSection, v.DisplaySection)
	}
	if got := strings.Join(bodyTitles(v), ","); got != "Installation,Configuration" {
		t.Errorf("body = %s, want first section items", got)
	}
}

func TestViewCollapsibleSectionHidesBody(t *testing.T) {
	v := newTestPresenter("/docs/reference/proxy").View()
	if v.CurrentSection != 3 {
		t.Fatalf("current section = %d, want 3", v.CurrentSection)
	}
	if v.HasBody() {
		t.Errorf("body should be empty for a collapsible section, got %v", bodyTitles(v))
	}
	entry := v.Entries[3]
	if !entry.Open {
		t.Error("active collapsible section should default to open")
	}
	if len(entry.Nodes) != 1 || entry.Nodes[0].URL != "/docs/reference/proxy" {
		t.Errorf("entry nodes = %+v", entry.Nodes)
	}
	if entry.URL != navigation.NoDestination {
		t.Errorf("entry url = %q, want %q", entry.URL, navigation.NoDestination)
	}
}

func TestPinAndClickClearsPin(t *testing.T) {
	p := newTestPresenter("/docs/firebase/overview")

	p.Pin(1)
	v := p.View()
	if v.Mode != "pinned" || v.DisplaySection != 1 {
		t.Fatalf("after Pin(1): mode=%s display=%d", v.Mode, v.DisplaySection)
	}
	if v.CurrentSection != 2 {
		t.Errorf("pinning must not change the path-derived section, got %d", v.CurrentSection)
	}

	p.Navigate("/docs/firebase/initialize")
	if p.View().DisplaySection != 1 {
		t.Error("pin should survive navigation")
	}

	p.ClickSection(2)
	v = p.View()
	if v.Mode != "path-derived" || v.DisplaySection != 2 {
		t.Errorf("after click: mode=%s display=%d, want path-derived/2", v.Mode, v.DisplaySection)
	}
}

func TestClickCollapsibleSectionTogglesOnlyItsDisclosure(t *testing.T) {
	p := newTestPresenter("/docs/firebase/overview")
	p.Pin(1)

	if p.View().Entries[3].Open {
		t.Fatal("inactive collapsible section should start closed")
	}
	p.ClickSection(3)
	v := p.View()
	if !v.Entries[3].Open {
		t.Error("click should open the collapsible section")
	}
	if v.Mode != "pinned" || v.DisplaySection != 1 {
		t.Errorf("selection changed to mode=%s display=%d", v.Mode, v.DisplaySection)
	}
	p.ClickSection(3)
	if p.View().Entries[3].Open {
		t.Error("second click should close the collapsible section")
	}
}

func TestPinOutOfRangeIgnored(t *testing.T) {
	p := newTestPresenter("/docs/firebase/overview")
	p.Pin(42)
	p.Pin(-1)
	if p.Selection().Mode() != PathDerived {
		t.Error("out-of-range pin should be ignored")
	}
}

func TestFolderDefaultOpen(t *testing.T) {
	v := newTestPresenter("/docs/guides/authentication-flows/custom-sign-in").View()
	folder := v.Body[1]
	if folder.Type != navigation.NodeFolder {
		t.Fatalf("body[1] = %+v, want folder", folder)
	}
	if !folder.Open {
		t.Error("folder containing the current page should be open")
	}

	v = newTestPresenter("/docs/guides/overview").View()
	if v.Body[1].Open {
		t.Error("folder not containing the current page should be closed")
	}
}

func TestToggleFolder(t *testing.T) {
	p := newTestPresenter("/docs/guides/overview")
	key := p.View().Body[1].Key
	if key != "1:authentication-flows" {
		t.Fatalf("folder key = %q", key)
	}

	p.ToggleFolder(key)
	if !p.View().Body[1].Open {
		t.Error("toggle should open a closed folder")
	}
	p.ToggleFolder(key)
	if p.View().Body[1].Open {
		t.Error("second toggle should close it again")
	}

	p.ToggleFolder("1:missing")
	p.ToggleFolder("garbage")
}

func TestSetConfigDropsState(t *testing.T) {
	p := newTestPresenter("/docs/guides/overview")
	p.Pin(2)
	p.SetFolderOpen("1:authentication-flows", true)

	p.SetConfig(testTabs, testSections)
	v := p.View()
	if v.Mode != "path-derived" {
		t.Errorf("mode = %s, want path-derived", v.Mode)
	}
	if v.Body[1].Open {
		t.Error("folder override should be dropped")
	}
}

func TestEmptyConfig(t *testing.T) {
	v := NewPresenter(nil, nil, nil).View()
	if v.Tab != nil {
		t.Errorf("tab = %+v, want nil", v.Tab)
	}
	if v.HasBody() || len(v.Entries) != 0 {
		t.Error("empty config should produce an empty view")
	}
}

func TestUnlistedTabs(t *testing.T) {
	tabs := []navigation.Tab{
		{Title: "Next.js", URL: "/docs/nextjs", SDK: "nextjs"},
		{Title: "Beta", URL: "/docs/beta", SDK: "beta", Unlisted: true},
	}
	p := NewPresenter(nil, tabs, nil)
	p.Navigate("/docs/nextjs")
	if n := len(p.View().Tabs); n != 1 {
		t.Errorf("tabs = %d, want unlisted tab hidden", n)
	}
	p.Navigate("/docs/beta/x")
	v := p.View()
	if len(v.Tabs) != 2 || !v.Tabs[1].Active {
		t.Errorf("active unlisted tab should be listed, got %+v", v.Tabs)
	}
}

func TestContextLifecycle(t *testing.T) {
	ctx := NewContext()
	ctx.SetOpen(true)
	if ctx.Open() {
		t.Error("unmounted context should ignore SetOpen")
	}

	ctx.Mount()
	ctx.SetOpen(true)
	ctx.SetCollapsed(true)
	if s := ctx.Snapshot(); !s.Open || !s.Collapsed {
		t.Errorf("snapshot = %+v", s)
	}

	p := NewPresenter(ctx, testTabs, testSections)
	if !p.View().Sidebar.Open {
		t.Error("view should reflect the shared context")
	}

	ctx.Unmount()
	if ctx.Mounted() || ctx.Open() || ctx.Collapsed() {
		t.Error("unmount should reset the context")
	}
}
