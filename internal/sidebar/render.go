package sidebar

import (
	"fmt"
	"html"
	"strings"

	"github.com/ternsecure/docsite/internal/navigation"
)

// ToHTML renders the view as nested <ul><li> HTML: the tab switcher, the
// top-level entries, and the body of the displayed section.
func (v View) ToHTML() string {
	var b strings.Builder

	if len(v.Tabs) > 0 {
		b.WriteString(`<ul class="sidebar-tabs">` + "\n")
		for _, tab := range v.Tabs {
			fmt.Fprintf(&b, `<li class="tab%s"><a href="%s">%s<span class="tab-title">%s</span>`,
				activeClass(tab.Active), esc(tab.URL), icon(tab.Icon), esc(tab.Title))
			if tab.Description != "" {
				fmt.Fprintf(&b, `<span class="tab-description">%s</span>`, esc(tab.Description))
			}
			b.WriteString("</a></li>\n")
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString(`<ul class="sidebar-entries">` + "\n")
	for _, e := range v.Entries {
		if e.Collapsible {
			fmt.Fprintf(&b, `<li class="entry dir%s%s" data-section="%d"><span class="dir-toggle">%s%s</span>`+"\n",
				expandedClass(e.Open), activeClass(e.Active), e.Index, icon(e.Icon), esc(e.Title))
			renderNodes(&b, e.Nodes)
			b.WriteString("</li>\n")
			continue
		}
		fmt.Fprintf(&b, `<li class="entry%s" data-section="%d"><a href="%s">%s%s</a></li>`+"\n",
			activeClass(e.Active), e.Index, esc(e.URL), icon(e.Icon), esc(e.Title))
	}
	b.WriteString("</ul>\n")

	if v.HasBody() {
		b.WriteString(`<hr class="sidebar-divider">` + "\n")
		b.WriteString(`<nav class="sidebar-body">` + "\n")
		renderNodes(&b, v.Body)
		b.WriteString("</nav>\n")
	}
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []NodeView) {
	if len(nodes) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for i, n := range nodes {
		switch n.Type {
		case navigation.NodeSeparator:
			spacing := ""
			if i > 0 {
				spacing = " spaced"
			}
			fmt.Fprintf(b, `<li class="separator%s">%s%s</li>`+"\n", spacing, icon(n.Icon), esc(n.Title))
		case navigation.NodeFolder:
			fmt.Fprintf(b, `<li class="dir%s" data-folder="%s"><span class="dir-toggle">%s%s</span>`+"\n",
				expandedClass(n.Open), esc(n.Key), icon(n.Icon), esc(n.Title))
			renderNodes(b, n.Children)
			b.WriteString("</li>\n")
		default:
			fmt.Fprintf(b, `<li class="file"><a href="%s"%s>%s%s</a></li>`+"\n",
				esc(n.URL), activeAttr(n.Active), icon(n.Icon), esc(n.Title))
		}
	}
	b.WriteString("</ul>\n")
}

func esc(s string) string { return html.EscapeString(s) }

func icon(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf(`<i class="icon icon-%s"></i>`, esc(name))
}

func activeClass(active bool) string {
	if active {
		return " active"
	}
	return ""
}

func activeAttr(active bool) string {
	if active {
		return ` class="active"`
	}
	return ""
}

func expandedClass(open bool) string {
	if open {
		return " expanded"
	}
	return ""
}
