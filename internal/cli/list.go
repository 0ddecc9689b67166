package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
)

// listSections are the catalogs list can print, in output order.
var listSections = []string{"frameworks", "auth", "ui", "mcp", "plugins"}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "list [" + strings.Join(listSections, "|") + "]",
		Short:     "List the available frameworks, providers, libraries and plugins",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: listSections,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := listSections
			if len(args) == 1 {
				sections = args
			}
			return runList(a.deps, sections, len(args) == 1)
		},
	}
}

// runList prints sections. The plugin catalog needs the template store;
// when it is missing the section is skipped unless it was asked for.
func runList(deps *Dependencies, sections []string, explicit bool) error {
	r := deps.Renderer
	for _, s := range sections {
		var headers []string
		var rows [][]string

		switch s {
		case "frameworks":
			headers = []string{"ID", "NAME", "UI LIBRARIES"}
			for _, f := range catalog.Frameworks() {
				rows = append(rows, []string{f.ID, f.Name, yesNo(f.UILibraries)})
			}
		case "auth":
			headers = []string{"ID", "NAME", "DATABASE", "FRAMEWORKS"}
			for _, p := range catalog.AuthProviders() {
				rows = append(rows, []string{p.ID, p.Name, yesNo(p.RequiresDatabase), joinOrAll(p.SupportedFrameworks)})
			}
		case "ui":
			headers = []string{"ID", "NAME", "TAILWIND", "FRAMEWORKS"}
			for _, u := range catalog.UILibraries() {
				rows = append(rows, []string{u.ID, u.Name, yesNo(u.RequiresTailwind), joinOrAll(u.SupportedFrameworks)})
			}
		case "mcp":
			headers = []string{"ID", "NAME", "DESCRIPTION"}
			for _, m := range catalog.MCPServers() {
				rows = append(rows, []string{m.ID, m.Name, m.Description})
			}
		case "plugins":
			engine, err := deps.Engine()
			if err != nil {
				if explicit {
					return err
				}
				deps.Logger.Debug("skipping plugins", "error", err)
				continue
			}
			entries, err := catalog.ListPluginEntries(engine.FS())
			if err != nil {
				return err
			}
			headers = []string{"ID", "NAME", "CATEGORY", "DESCRIPTION"}
			for _, e := range entries {
				rows = append(rows, []string{e.ID, e.Name, e.Category, e.Description})
			}
		}

		fmt.Fprintln(deps.Out, deps.Theme.Title().Render(strings.ToUpper(s)))
		fmt.Fprintln(deps.Out, r.Table(headers, rows))
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func joinOrAll(ids []string) string {
	if len(ids) == 0 {
		return "all"
	}
	return strings.Join(ids, ", ")
}
