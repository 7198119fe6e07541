package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/ternsecure/docsite/internal/navigation"
	"github.com/ternsecure/docsite/internal/sidebar"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the sidebar for a URL",
	Long: `Prints the sidebar a visitor of --path would see: the selected tab, the
top-level entries, and the items of the displayed section, with the active
entries highlighted. --pin shows another section's items as if its entry had
been selected.`,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().String("path", "/", "pathname to resolve the sidebar for")
	treeCmd.Flags().Int("pin", -1, "section index to pin")
	treeCmd.Flags().Bool("json", false, "print the sidebar view as JSON")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	pathname, _ := cmd.Flags().GetString("path")
	pin, _ := cmd.Flags().GetInt("pin")

	p := sidebar.NewPresenter(nil, cfg.Tabs, cfg.Navigation)
	p.Navigate(pathname)
	if pin >= 0 {
		p.Pin(pin)
	}
	view := p.View()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderViewTree(view).String())
	return nil
}

// renderViewTree draws a sidebar view as a terminal tree.
func renderViewTree(v sidebar.View) *tree.Tree {
	root := v.Pathname
	if v.Tab != nil {
		root += styleDim.Render(fmt.Sprintf("  [%s, sdk=%s, %s]", v.Tab.Title, v.SDK, v.Mode))
	}
	t := tree.Root(styleTitle.Render(root)).Enumerator(tree.RoundedEnumerator)

	// The body belongs under the displayed entry, or the first one when
	// nothing matched.
	bodyIndex := v.DisplaySection
	if bodyIndex == -1 {
		bodyIndex = 0
	}

	for _, e := range v.Entries {
		label := e.Title
		if e.Index == v.DisplaySection && v.Mode == sidebar.Pinned.String() {
			label += " (pinned)"
		}
		label = highlight(label, e.Active)
		if e.Collapsible {
			sub := tree.Root(label + openMarker(e.Open))
			if e.Open {
				addNodes(sub, e.Nodes)
			}
			t.Child(sub)
			continue
		}
		if e.Index == bodyIndex {
			sub := tree.Root(label)
			addNodes(sub, v.Body)
			t.Child(sub)
			continue
		}
		t.Child(label)
	}
	return t
}

func addNodes(t *tree.Tree, nodes []sidebar.NodeView) {
	for _, n := range nodes {
		switch n.Type {
		case navigation.NodeSeparator:
			t.Child(styleDim.Render("── " + n.Title))
		case navigation.NodeFolder:
			sub := tree.Root(n.Title + openMarker(n.Open))
			if n.Open {
				addNodes(sub, n.Children)
			}
			t.Child(sub)
		default:
			t.Child(highlight(n.Title, n.Active) + styleDim.Render("  "+n.URL))
		}
	}
}

func highlight(s string, active bool) string {
	if active {
		return styleActive.Render("● " + s)
	}
	return s
}

func openMarker(open bool) string {
	if open {
		return styleDim.Render(" ▾")
	}
	return styleDim.Render(" ▸")
}
