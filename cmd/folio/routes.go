package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/folio/internal/site"
)

var routesJSONOutput bool

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List every pre-renderable page",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func init() {
	routesCmd.Flags().BoolVar(&routesJSONOutput, "json", false, "Output in JSON format")
}

type routeInfo struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

func runRoutes(cmd *cobra.Command, args []string) error {
	catalog, _, err := loadSite()
	if err != nil {
		return err
	}

	routes := []routeInfo{{Path: "/", Title: catalog.Profile().Name}}
	for _, p := range catalog.Projects() {
		routes = append(routes, routeInfo{Path: site.CaseStudyPath(p.Slug), Title: p.Name})
	}

	if routesJSONOutput {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"routes": routes,
			"total":  len(routes),
		})
	}

	w := newTabWriter(cmd.OutOrStdout())
	fmt.Fprintln(w, "PATH\tTITLE")
	for _, r := range routes {
		fmt.Fprintf(w, "%s\t%s\n", r.Path, r.Title)
	}
	return w.Flush()
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter returns a configured tabwriter for aligned columns.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
