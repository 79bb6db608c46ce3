// Command contractctl administers the contract tracker from a terminal: it
// serves the HTTP API and inspects or changes the stored collections.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"contract_tracker/internal/app"
	"contract_tracker/internal/infrastructure/config"
	"contract_tracker/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries what every subcommand shares. app is opened lazily in the
// root pre-run so --help works without touching storage.
type cli struct {
	storageDriver string
	storageDir    string
	verbose       bool
	yes           bool

	in  io.Reader
	app *app.App
	log *zap.Logger
}

func newRootCmd(in io.Reader) *cobra.Command {
	c := &cli{in: in}

	root := &cobra.Command{
		Use:   "contractctl",
		Short: "Contract tracker admin CLI",
		Long: `contractctl manages contracts and blueprints of the contract tracker.

Storage is selected the same way as for the API server (STORAGE_DRIVER and
friends, optionally from CONFIG_FILE or .env); the flags below override it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.close()
		},
	}

	root.PersistentFlags().StringVar(&c.storageDriver, "storage", "", "Storage driver: memory, file, dynamodb, postgres, sqlite or s3")
	root.PersistentFlags().StringVar(&c.storageDir, "data-dir", "", "Directory for the file driver")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVarP(&c.yes, "yes", "y", false, "Skip confirmation prompts")

	root.AddCommand(c.serveCmd())
	root.AddCommand(c.contractsCmd())
	root.AddCommand(c.blueprintsCmd())
	return root
}

func (c *cli) open(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.storageDriver != "" {
		cfg.Storage.Driver = c.storageDriver
	}
	if c.storageDir != "" {
		cfg.Storage.Dir = c.storageDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := cfg.Log
	logCfg.Format = "console"
	if c.verbose {
		logCfg.Level = "debug"
	} else if logCfg.Level == "info" {
		logCfg.Level = "warn"
	}
	c.log, err = logger.New(logCfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	c.app, err = app.New(ctx, cfg, c.log)
	return err
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
	}
	if c.log != nil {
		_ = c.log.Sync()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
