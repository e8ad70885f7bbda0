package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/folio/internal/config"
	"github.com/hyperengineering/folio/internal/site"
)

// errNoContactEndpoint is returned when a static build has no server to post
// the contact form to; the build output itself cannot receive submissions.
var errNoContactEndpoint = errors.New("contact endpoint required: set FOLIO_CONTACT_ENDPOINT or --api-base to a running folio server")

var (
	buildOutDir  string
	buildAPIBase string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Pre-render the site to static files",
	Long: "Renders the home page, every case study and the 404 page, and copies static assets into the output directory. The directory is replaced.\n\n" +
		"The contact form of a static build posts to a running folio server, given by --api-base or FOLIO_CONTACT_ENDPOINT. " +
		"That server must list the site's origin in FOLIO_ALLOWED_ORIGINS.",
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "",
		"Output directory (overrides config and FOLIO_OUTPUT_DIR)")
	buildCmd.Flags().StringVar(&buildAPIBase, "api-base", "",
		"Base URL of the folio server receiving contact submissions (overrides FOLIO_CONTACT_ENDPOINT)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir, files, err := buildSite(cfg, buildOutDir, buildAPIBase)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Built %d files into %s\n", len(files), dir)
	return nil
}

// buildSite renders into outDir, or the configured output directory, with
// the contact form pointed at apiBase, or the configured endpoint.
func buildSite(cfg *config.Config, outDir, apiBase string) (string, []string, error) {
	dir := cfg.Site.OutputDir
	if outDir != "" {
		dir = outDir
	}

	endpoint := cfg.Site.ContactEndpoint
	if apiBase != "" {
		if err := config.ValidateBaseURL(apiBase); err != nil {
			return "", nil, fmt.Errorf("--api-base: %w", err)
		}
		endpoint = apiBase
	}
	if endpoint == "" {
		return "", nil, errNoContactEndpoint
	}

	_, s, err := loadSite(site.WithContactEndpoint(endpoint))
	if err != nil {
		return "", nil, err
	}

	files, err := s.Build(dir)
	if err != nil {
		return "", nil, fmt.Errorf("build site: %w", err)
	}
	return dir, files, nil
}
