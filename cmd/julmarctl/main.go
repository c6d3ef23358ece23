// Command julmarctl is the build-time companion of the web server: it writes
// the sitemap, checks the fleet catalog and previews quote links.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"julmar.cl/web/internal/config"
	"julmar.cl/web/internal/observability"
)

// cli carries the state shared by every subcommand.
type cli struct {
	configFile  string
	catalogFile string
	verbose     bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "julmarctl",
		Short:         "Build-time tooling for the Julmar rental site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&c.configFile, "config", os.Getenv("JULMAR_CONFIG_FILE"), "optional config file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&c.catalogFile, "catalog", "", "catalog YAML file (default: config, then the embedded fleet)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(c.sitemapCmd())
	root.AddCommand(c.catalogCmd())
	root.AddCommand(c.quoteCmd())
	return root
}

func (c *cli) setup() error {
	var opts []config.Option
	if c.configFile != "" {
		opts = append(opts, config.WithFile(c.configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	logger, err := observability.NewLogger(level, "stderr")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	c.logger = logger
	return nil
}

// catalogPath prefers the --catalog flag over catalog.file from config.
func (c *cli) catalogPath() string {
	if c.catalogFile != "" {
		return c.catalogFile
	}
	return c.cfg.Catalog.File
}
