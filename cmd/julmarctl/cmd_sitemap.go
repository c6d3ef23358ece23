package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"julmar.cl/web/internal/catalog"
	"julmar.cl/web/internal/sitemap"
)

func (c *cli) sitemapCmd() *cobra.Command {
	var out, baseURL, basePath string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Write sitemap.xml for the landing page and every machine",
		Long: `Writes a sitemap listing the landing page sections followed by one
entry per machine detail page. Without --out the document goes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load(c.catalogPath())
			if err != nil {
				return err
			}
			opts := sitemap.Options{BaseURL: c.cfg.Site.BaseURL, BasePath: c.cfg.Catalog.BasePath}
			if baseURL != "" {
				opts.BaseURL = baseURL
			}
			if basePath != "" {
				opts.BasePath = basePath
			}

			var buf bytes.Buffer
			if err := sitemap.Generate(&buf, opts, cat); err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("create %s: %w", filepath.Dir(out), err)
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			c.logger.Debug("sitemap written", zap.String("path", out), zap.Int("machines", cat.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d machines)\n", out, cat.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, e.g. public/sitemap.xml (default: stdout)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "absolute site URL (default: site.base_url)")
	cmd.Flags().StringVar(&basePath, "base-path", "", "machine detail prefix (default: catalog.base_path)")
	return cmd
}
