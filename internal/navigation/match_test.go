package navigation

import "testing"

func TestResolveURL(t *testing.T) {
	tests := []struct {
		template, sdk, want string
	}{
		{"/docs/${sdk}/configuration", "react", "/docs/react/configuration"},
		{"/docs/${sdk}/${sdk}", "nextjs", "/docs/nextjs/nextjs"},
		{"/docs/static", "react", "/docs/static"},
		{"", "react", ""},
		{"/docs/{sdk}/$sdk", "react", "/docs/{sdk}/$sdk"},
		{"/docs/${${sdk}dk}", "s", "/docs/s"},
		{"${${sdk}", "sdk}$", "$"},
		{"/docs/${sdk}", "${sdk}", "/docs/"},
		{"/docs/${sdk}/a", "v$2", "/docs/v$2/a"},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.template, tt.sdk); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.template, tt.sdk, got, tt.want)
		}
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		url, pathname string
		want          bool
	}{
		{"/docs/react", "/docs/react", true},
		{"/docs/react", "/docs/react/getting-started", true},
		{"/docs/react", "/docs/reactive", false},
		{"/docs/react", "/docs/React", false},
		{"/docs/react", "/docs", false},
		{NoDestination, "/docs", false},
	}
	for _, tt := range tests {
		if got := IsActive(tt.url, tt.pathname); got != tt.want {
			t.Errorf("IsActive(%q, %q) = %v, want %v", tt.url, tt.pathname, got, tt.want)
		}
	}
}

var testTabs = []Tab{
	{Title: "Next.js", URL: "/docs/nextjs", SDK: "nextjs"},
	{Title: "React", URL: "/docs/react", SDK: "react"},
}

func TestSelectTabPrefixMatch(t *testing.T) {
	tab, ok := SelectTab(testTabs, "/docs/react/getting-started")
	if !ok {
		t.Fatal("SelectTab returned ok=false")
	}
	if tab.SDK != "react" {
		t.Errorf("selected tab = %q, want react", tab.SDK)
	}
}

func TestSelectTabFallsBackToFirst(t *testing.T) {
	tab, ok := SelectTab(testTabs, "/unrelated")
	if !ok || tab.SDK != "nextjs" {
		t.Errorf("SelectTab(/unrelated) = %q ok=%v, want nextjs", tab.SDK, ok)
	}
}

func TestSelectTabEmpty(t *testing.T) {
	if _, ok := SelectTab(nil, "/docs"); ok {
		t.Error("SelectTab(nil) should report ok=false")
	}
}

func TestSelectTabLastMatchWins(t *testing.T) {
	tabs := []Tab{
		{Title: "Docs", URL: "/docs", SDK: "all"},
		{Title: "React", URL: "/docs/react", SDK: "react"},
	}
	tab, _ := SelectTab(tabs, "/docs/react/hooks")
	if tab.SDK != "react" {
		t.Errorf("selected tab = %q, want react (later, more specific tab)", tab.SDK)
	}
	tab, _ = SelectTab(tabs, "/docs/guides")
	if tab.SDK != "all" {
		t.Errorf("selected tab = %q, want all", tab.SDK)
	}
}

func TestSelectTabExplicitURLs(t *testing.T) {
	tabs := []Tab{
		{Title: "Next.js", URL: "/docs/nextjs", SDK: "nextjs"},
		{Title: "React", URL: "/docs/react/getting-started", SDK: "react", URLs: []string{"/docs/react/getting-started", "/docs/react/configuration"}},
	}
	tab, _ := SelectTab(tabs, "/docs/react/configuration")
	if tab.SDK != "react" {
		t.Errorf("selected tab = %q, want react", tab.SDK)
	}
	tab, _ = SelectTab(tabs, "/docs/react/getting-started/sub")
	if tab.SDK != "nextjs" {
		t.Errorf("selected tab = %q, want fallback nextjs for path outside the URL set", tab.SDK)
	}
}

var testSections = []Section{
	{
		Title: "Getting Started",
		URL:   "/docs/getting-started/installation",
		Items: []Item{
			{Title: "Installation", URL: "/docs/getting-started/installation"},
			{Title: "Configuration", URL: "/docs/${sdk}/configuration"},
		},
	},
	{
		Title: "Guides",
		Items: []Item{
			{Title: "Authentication Flows", Collapsible: true, Items: []Item{
				{Title: "Custom Sign-In", URL: "/docs/guides/authentication-flows/custom-sign-in"},
			}},
		},
	},
	{
		Title: "Firebase",
		URL:   "/docs/firebase/overview",
		Items: []Item{{Title: "Initialize", URL: "/docs/firebase/initialize"}},
	},
}

func TestSelectSection(t *testing.T) {
	tests := []struct {
		name, pathname, sdk string
		want                int
	}{
		{"own url", "/docs/firebase/overview", "nextjs", 2},
		{"item url", "/docs/firebase/initialize", "nextjs", 2},
		{"resolved item url", "/docs/react/configuration", "react", 0},
		{"unresolved sdk mismatch", "/docs/react/configuration", "nextjs", -1},
		{"nested item", "/docs/guides/authentication-flows/custom-sign-in/step-2", "nextjs", 1},
		{"no match", "/docs/unknown", "nextjs", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectSection(testSections, tt.pathname, tt.sdk); got != tt.want {
				t.Errorf("SelectSection(%q, %q) = %d, want %d", tt.pathname, tt.sdk, got, tt.want)
			}
		})
	}
}

func TestSelectSectionFirstMatchWins(t *testing.T) {
	sections := []Section{
		{Title: "A", Items: []Item{{Title: "x", URL: "/docs/shared"}}},
		{Title: "B", URL: "/docs/shared"},
	}
	if got := SelectSection(sections, "/docs/shared", ""); got != 0 {
		t.Errorf("SelectSection() = %d, want 0", got)
	}
}

func TestContainsActive(t *testing.T) {
	nodes := Compile([]Item{
		{Title: "Flows", Collapsible: true, Items: []Item{
			{Title: "Deep", Collapsible: true, Items: []Item{{Title: "Leaf", URL: "/docs/flows/deep/leaf"}}},
		}},
		{Title: "Other", URL: "/docs/other"},
	}, "nextjs")

	if !ContainsActive(nodes[0].Children, "/docs/flows/deep/leaf") {
		t.Error("folder subtree containing the exact pathname should be active")
	}
	if ContainsActive(nodes[0].Children, "/docs/other") {
		t.Error("folder subtree without the pathname should not be active")
	}
}
