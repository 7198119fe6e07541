package config

import "github.com/ternsecure/docsite/internal/navigation"

// DefaultExcludes are glob patterns excluded from the content tree by default.
var DefaultExcludes = []string{
	"**/_*",
	"**/.*",
	"node_modules/**",
	"drafts/**",
}

// DefaultTabs are the SDK tabs of the TernSecure documentation.
var DefaultTabs = []navigation.Tab{
	{
		Title:       "Next.js",
		Description: "Next.js framework",
		URL:         "/docs/nextjs",
		SDK:         "nextjs",
		Icon:        "book-open",
	},
	{
		Title:       "React",
		Description: "React framework",
		URL:         "/docs/react",
		SDK:         "react",
		Icon:        "file-text",
	},
}

// DefaultNavigation is the TernSecure documentation navigation.
var DefaultNavigation = []navigation.Section{
	{
		Title: "Getting Started",
		Icon:  "book-open",
		URL:   "/docs/getting-started/installation",
		Items: []navigation.Item{
			{Title: "Installation", URL: "/docs/getting-started/installation"},
			{Title: "Configuration", URL: "/docs/${sdk}/configuration"},
		},
	},
	{
		Title: "Guides",
		Icon:  "file-text",
		URL:   "/docs/guides/overview",
		Items: []navigation.Item{
			{Title: "Overview", URL: "/docs/guides/overview"},
			{
				Title:       "Authentication Flows",
				Collapsible: true,
				Items: []navigation.Item{
					{Title: "Custom Sign-In", URL: "/docs/guides/authentication-flows/custom-sign-in"},
					{Title: "Custom Sign-Up", URL: "/docs/guides/authentication-flows/custom-sign-up"},
				},
			},
			{Title: "Auth State Persistence", URL: "/docs/guides/authstate-persistence"},
		},
	},
	{
		Title: "Firebase",
		Icon:  "settings",
		URL:   "/docs/firebase/overview",
		Items: []navigation.Item{
			{Title: "Overview", URL: "/docs/firebase/overview"},
			{Title: "Initialize Authentication SDK", URL: "/docs/firebase/initialize"},
			{Title: "Authorized Domains & Redirect URIs", URL: "/docs/firebase/authorized-domains"},
			{Title: "Best Practices for signInWithRedirect", URL: "/docs/firebase/redirect-best-practices"},
		},
	},
	{
		Title:       "API Reference",
		Icon:        "shield",
		Collapsible: true,
		Items: []navigation.Item{
			{Title: "ternSecureProxy()", URL: "/docs/reference/proxy"},
			{Title: "ternSecureInstrumentation()", URL: "/docs/reference/instrumentation"},
		},
	},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:      "TernSecure Auth Docs",
		ContentDir: "content",
		OutputDir:  "public",
		Include:    []string{"**/*.md"},
		Exclude:    append([]string(nil), DefaultExcludes...),
		Server: ServerConfig{
			Port: 3000,
		},
		Tabs:       append([]navigation.Tab(nil), DefaultTabs...),
		Navigation: append([]navigation.Section(nil), DefaultNavigation...),
	}
}
