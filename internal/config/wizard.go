package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ternsecure/docsite/internal/navigation"
)

// knownSDKs maps SDK identifiers offered by the wizard to tab titles.
var knownSDKs = map[string]string{
	"nextjs":  "Next.js",
	"react":   "React",
	"vue":     "Vue",
	"svelte":  "Svelte",
	"angular": "Angular",
	"astro":   "Astro",
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docsite! Let's configure your documentation.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	// 2. Content directory.
	contentPrompt := promptui.Prompt{
		Label:   "Markdown content directory",
		Default: cfg.ContentDir,
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. SDK tabs.
	sdkPrompt := promptui.Prompt{
		Label:   "SDKs to document (comma-separated)",
		Default: "nextjs,react",
	}
	sdkStr, err := sdkPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("sdk list: %w", err)
	}

	// 5. Starter navigation.
	navPrompt := promptui.Select{
		Label: "Starter navigation",
		Items: []string{
			"TernSecure sample navigation",
			"minimal (one section)",
		},
	}
	navIdx, _, err := navPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("navigation selection: %w", err)
	}

	cfg.Title = title
	cfg.ContentDir = contentDir
	cfg.OutputDir = outputDir
	cfg.Tabs = tabsFor(splitAndTrim(sdkStr))
	if navIdx == 1 {
		cfg.Navigation = []navigation.Section{{
			Title: "Getting Started",
			URL:   "/docs/${sdk}/getting-started",
			Items: []navigation.Item{
				{Title: "Introduction", URL: "/docs/${sdk}/getting-started"},
			},
		}}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// tabsFor builds one tab per SDK, rooted at /docs/<sdk>.
func tabsFor(sdks []string) []navigation.Tab {
	tabs := make([]navigation.Tab, 0, len(sdks))
	for _, sdk := range sdks {
		title, ok := knownSDKs[sdk]
		if !ok {
			title = sdk
		}
		tabs = append(tabs, navigation.Tab{
			Title:       title,
			Description: title + " framework",
			URL:         "/docs/" + sdk,
			SDK:         sdk,
		})
	}
	return tabs
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
