package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func (a *App) endpointsCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the endpoints callable in the configured environment",
		Long: `List endpoints with their parameters. Required parameters are shown
plainly, optional ones as name=default. With --all, development-only
endpoints are listed as well and marked.

No API token is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.loadConfig(false)
			if err != nil {
				return err
			}

			env := cfg.API.Environment
			var eps []models.Endpoint
			for _, ep := range idiotic.Endpoints() {
				if all || ep.AvailableIn(env) {
					eps = append(eps, ep)
				}
			}

			renderEndpoints(cmd.OutOrStdout(), eps, env)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include development-only endpoints")

	return cmd
}

func renderEndpoints(w io.Writer, eps []models.Endpoint, env models.Environment) {
	rows := [][]string{{"ENDPOINT", "CATEGORY", "RESULT", "PARAMETERS"}}
	for _, ep := range eps {
		name := ep.Name
		if len(ep.Aliases) > 0 {
			name += " (" + strings.Join(ep.Aliases, ", ") + ")"
		}
		if !ep.AvailableIn(env) {
			name += " *"
		}
		rows = append(rows, []string{name, string(ep.Category), ep.Result.String(), paramsSummary(ep)})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := cellStyle.Width(widths[i] + 2)
			switch {
			case r == 0:
				style = style.Inherit(headerStyle)
			case i == 0:
				style = style.Inherit(nameStyle)
			}
			cells[i] = style.Render(cell)
		}
		fmt.Fprintln(w, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
	}

	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("%d endpoints, environment %s; * development only", len(eps), env)))
}

func paramsSummary(ep models.Endpoint) string {
	parts := make([]string, 0, len(ep.Params))
	for _, p := range ep.Params {
		s := p.Name
		if len(p.Allowed) > 0 {
			s += "[" + strings.Join(p.Allowed, "|") + "]"
		}
		if p.Default != nil {
			s += "=" + *p.Default
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
