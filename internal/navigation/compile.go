package navigation

import (
	"strconv"
	"strings"
	"unicode"
)

// Compile turns navigation items into sidebar nodes for the selected SDK.
//
// Items restricted to other SDKs are dropped together with their subtree.
// A parent marked collapsible becomes a single folder node; any other parent
// becomes a page node followed by its compiled children at the same level.
// Output order follows input order.
func Compile(items []Item, sdk string) []Node {
	return compileItems(items, sdk, "", make(map[string]int))
}

// compileItems compiles one sibling level. seen tracks folder slugs already
// used at that level, including levels merged in by flattening.
func compileItems(items []Item, sdk, parentID string, seen map[string]int) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		if !item.AppliesTo(sdk) {
			continue
		}
		nodes = append(nodes, compileItem(item, sdk, parentID, seen)...)
	}
	return nodes
}

func compileItem(item Item, sdk, parentID string, seen map[string]int) []Node {
	if item.Separator {
		return []Node{{Type: NodeSeparator, Title: item.Title, Icon: item.Icon}}
	}

	url := resolveOrSentinel(item.URL, sdk)
	page := Node{Type: NodePage, Title: item.Title, URL: url, Icon: item.Icon}

	if len(item.Items) == 0 {
		return []Node{page}
	}

	if item.Collapsible {
		id := folderID(parentID, item.Title, seen)
		return []Node{{
			Type:        NodeFolder,
			ID:          id,
			Title:       item.Title,
			Icon:        item.Icon,
			Children:    compileItems(item.Items, sdk, id, make(map[string]int)),
			Collapsible: true,
		}}
	}

	children := compileItems(item.Items, sdk, parentID, seen)
	return append([]Node{page}, children...)
}

// folderID builds a stable identifier from the chain of folder titles.
// Repeated titles among siblings get a numeric suffix.
func folderID(parentID, title string, seen map[string]int) string {
	slug := slugify(title)
	seen[slug]++
	if n := seen[slug]; n > 1 {
		slug += "-" + strconv.Itoa(n)
	}
	if parentID == "" {
		return slug
	}
	return parentID + "/" + slug
}

// slugify lowercases s and collapses runs of non-alphanumerics into '-'.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "folder"
	}
	return slug
}

// Walk calls fn for every node in nodes, depth first, in render order.
// Returning false from fn stops descending into that node's children.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if fn(n) && n.Type == NodeFolder {
			Walk(n.Children, fn)
		}
	}
}
