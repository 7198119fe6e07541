package site

import (
	"sort"
	"strings"

	"github.com/ternsecure/docsite/internal/navigation"
)

// IssueKind classifies a problem found by Audit.
type IssueKind string

const (
	// IssueMissingPage is a navigation URL with no page behind it.
	IssueMissingPage IssueKind = "missing-page"
	// IssueOrphanPage is a page no tab or navigation entry links to.
	IssueOrphanPage IssueKind = "orphan-page"
)

// Issue is one problem found by Audit.
type Issue struct {
	Kind   IssueKind
	URL    string
	Detail string
}

func (i Issue) String() string {
	return string(i.Kind) + " " + i.URL + ": " + i.Detail
}

// Audit cross-checks the navigation against the content tree. Navigation is
// compiled once per tab SDK, so an item scoped to one SDK is only required
// to exist for that SDK. External and "#" URLs are ignored.
func Audit(pages []Page, tabs []navigation.Tab, sections []navigation.Section) []Issue {
	known := make(map[string]bool, len(pages))
	for _, p := range pages {
		known[p.URL] = true
	}

	// linked maps each internal URL to where it was first referenced.
	linked := make(map[string]string)
	link := func(url, where string) {
		if url == "" || url == navigation.NoDestination || !strings.HasPrefix(url, "/") {
			return
		}
		if _, ok := linked[url]; !ok {
			linked[url] = where
		}
	}

	sdks := []string{""}
	if len(tabs) > 0 {
		sdks = sdks[:0]
		for _, t := range tabs {
			link(t.URL, "tab "+t.Title)
			for _, u := range t.URLs {
				link(u, "tab "+t.Title)
			}
			sdks = append(sdks, t.SDK)
		}
	}

	for _, sdk := range sdks {
		for _, sec := range sections {
			where := "section " + sec.Title
			if sdk != "" {
				where += " (" + sdk + ")"
			}
			if sec.URL != "" {
				link(navigation.ResolveURL(sec.URL, sdk), where)
			}
			navigation.Walk(navigation.Compile(sec.Items, sdk), func(n navigation.Node) bool {
				if n.Type == navigation.NodePage {
					link(n.URL, where)
				}
				return true
			})
		}
	}

	var issues []Issue
	for url, where := range linked {
		if !known[url] {
			issues = append(issues, Issue{Kind: IssueMissingPage, URL: url, Detail: "linked from " + where})
		}
	}
	for _, p := range pages {
		if _, ok := linked[p.URL]; !ok {
			issues = append(issues, Issue{Kind: IssueOrphanPage, URL: p.URL, Detail: p.SourcePath + " is not in the navigation"})
		}
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Kind != issues[j].Kind {
			return issues[i].Kind < issues[j].Kind
		}
		return issues[i].URL < issues[j].URL
	})
	return issues
}
