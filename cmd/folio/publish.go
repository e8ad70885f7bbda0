package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperengineering/folio/internal/config"
	"github.com/hyperengineering/folio/internal/publish"
)

var (
	publishOutDir    string
	publishAPIBase   string
	publishSkipBuild bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Build the site and upload it to S3-compatible storage",
	Args:  cobra.NoArgs,
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().StringVarP(&publishOutDir, "out", "o", "",
		"Build directory (overrides config and FOLIO_OUTPUT_DIR)")
	publishCmd.Flags().StringVar(&publishAPIBase, "api-base", "",
		"Base URL of the folio server receiving contact submissions (overrides FOLIO_CONTACT_ENDPOINT)")
	publishCmd.Flags().BoolVar(&publishSkipBuild, "skip-build", false,
		"Upload the existing build directory without rebuilding")
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Publish.Bucket == "" {
		return fmt.Errorf("%w: set FOLIO_PUBLISH_BUCKET", publish.ErrNotConfigured)
	}

	up, err := publish.NewUploader(cfg.Publish)
	if err != nil {
		return err
	}

	dir := cfg.Site.OutputDir
	if publishOutDir != "" {
		dir = publishOutDir
	}
	if !publishSkipBuild {
		if dir, _, err = buildSite(cfg, publishOutDir, publishAPIBase); err != nil {
			return err
		}
	}

	n, err := publish.PublishDir(cmd.Context(), up, dir, cfg.Publish.Prefix)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published %d files to s3://%s/%s\n", n, cfg.Publish.Bucket, cfg.Publish.Prefix)
	return nil
}
