package navigation

import "strings"

// IsActive reports whether pathname equals url or lies below it on a '/'
// boundary. Matching is case-sensitive; "/docs/react" does not match
// "/docs/reactive".
func IsActive(url, pathname string) bool {
	return pathname == url || strings.HasPrefix(pathname, url+"/")
}

// TabMatches reports whether tab is active for pathname. A tab with an
// explicit URL set matches only its members.
func TabMatches(tab Tab, pathname string) bool {
	if len(tab.URLs) > 0 {
		for _, u := range tab.URLs {
			if u == pathname {
				return true
			}
		}
		return false
	}
	return IsActive(tab.URL, pathname)
}

// SelectTab returns the last tab matching pathname, so tabs declared later
// override broader ones declared earlier. Without a match it falls back to
// the first tab. ok is false only when tabs is empty.
func SelectTab(tabs []Tab, pathname string) (tab Tab, ok bool) {
	if len(tabs) == 0 {
		return Tab{}, false
	}
	for i := len(tabs) - 1; i >= 0; i-- {
		if TabMatches(tabs[i], pathname) {
			return tabs[i], true
		}
	}
	return tabs[0], true
}

// SelectSection returns the index of the first section whose own URL, or
// the URL of one of its items or their direct children, matches pathname
// after SDK substitution. It returns -1 when nothing matches.
func SelectSection(sections []Section, pathname, sdk string) int {
	for i, sec := range sections {
		if sectionMatches(sec, pathname, sdk) {
			return i
		}
	}
	return -1
}

func sectionMatches(sec Section, pathname, sdk string) bool {
	if sec.URL != "" && IsActive(ResolveURL(sec.URL, sdk), pathname) {
		return true
	}
	for _, item := range sec.Items {
		if urlMatches(item.URL, pathname, sdk) {
			return true
		}
		for _, sub := range item.Items {
			if urlMatches(sub.URL, pathname, sdk) {
				return true
			}
		}
	}
	return false
}

func urlMatches(template, pathname, sdk string) bool {
	return template != "" && IsActive(ResolveURL(template, sdk), pathname)
}

// ContainsActive reports whether any page in nodes, at any depth, matches
// pathname. Folders use it to decide whether they start open.
func ContainsActive(nodes []Node, pathname string) bool {
	found := false
	Walk(nodes, func(n Node) bool {
		if found {
			return false
		}
		if n.Type == NodePage && IsActive(n.URL, pathname) {
			found = true
		}
		return true
	})
	return found
}
