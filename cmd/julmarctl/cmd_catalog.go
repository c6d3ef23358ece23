package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"julmar.cl/web/internal/catalog"
	"julmar.cl/web/internal/slug"
)

func (c *cli) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the fleet catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check ids, categories, image paths and slug uniqueness",
		Args:  cobra.NoArgs,
		RunE:  c.runCatalogValidate,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "slugs",
		Short: "Print id, slug and name of every machine",
		Args:  cobra.NoArgs,
		RunE:  c.runCatalogSlugs,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <slug|name>",
		Short: "Print one machine as YAML",
		Long:  `Prints one machine as YAML. A display name is slugified before the lookup.`,
		Args:  cobra.ExactArgs(1),
		RunE:  c.runCatalogShow,
	})
	return cmd
}

func (c *cli) runCatalogValidate(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.Load(c.catalogPath())
	if err != nil {
		return err
	}
	if err := cat.Validate(); err != nil {
		var joined interface{ Unwrap() []error }
		problems := []error{err}
		if errors.As(err, &joined) {
			problems = joined.Unwrap()
		}
		for _, p := range problems {
			fmt.Fprintln(cmd.ErrOrStderr(), p)
		}
		return fmt.Errorf("catalog has %d problem(s)", len(problems))
	}
	c.logger.Debug("catalog valid", zap.String("file", c.catalogPath()))
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d machines\n", cat.Len())
	return nil
}

func (c *cli) runCatalogSlugs(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.Load(c.catalogPath())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, m := range cat.All() {
		if _, err := fmt.Fprintf(out, "%d\t%s\t%s\n", m.ID, catalog.Slug(m), m.Name); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) runCatalogShow(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(c.catalogPath())
	if err != nil {
		return err
	}
	key := args[0]
	if !slug.Valid(key) {
		key = slug.Make(key)
	}
	m, ok := cat.FindBySlug(key)
	if !ok {
		return fmt.Errorf("no machine with slug %q", key)
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode %s: %w", args[0], err)
	}
	return enc.Close()
}
