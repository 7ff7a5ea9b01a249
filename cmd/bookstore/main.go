package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"bookstore/internal/book"
	"bookstore/internal/platform/logging"
	"bookstore/internal/scenario"
	"bookstore/internal/seed"
	"bookstore/internal/store"
	"bookstore/internal/user"

	"github.com/spf13/cobra"
)

var errExpectationsFailed = errors.New("scenario expectations failed")

type options struct {
	seedFile  string
	format    string
	logLevel  string
	logFormat string
}

type app struct {
	users  *user.Service
	books  *book.Service
	logger *slog.Logger
}

func main() {
	loadEnvFiles()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := loadConfig()
	opts := &options{}

	root := &cobra.Command{
		Use:           "bookstore",
		Short:         "In-memory bookstore: catalog, accounts, purchases and reviews",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(opts.format)
		},
	}

	root.PersistentFlags().StringVar(&opts.seedFile, "seed", cfg.SeedFile, "YAML fixture with users, books and purchases (env "+envSeedFile+")")
	root.PersistentFlags().StringVar(&opts.format, "format", formatJSON, "output format: json|text")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error (env "+envLogLevel+")")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", cfg.LogFormat, "log format: text|json (env "+envLogFormat+")")

	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(newCatalogCmd(opts))
	root.AddCommand(newRunCmd(opts))
	return root
}

// newApp wires the services over a fresh user database and applies the
// seed fixture, if any. Logs go to the command's stderr.
func (o *options) newApp(cmd *cobra.Command) (*app, error) {
	logger, err := logging.New(cmd.ErrOrStderr(), o.logLevel, o.logFormat)
	if err != nil {
		return nil, err
	}

	db := store.NewUserMemory()
	a := &app{
		users:  user.NewService(db),
		books:  book.NewService(db),
		logger: logger,
	}

	if o.seedFile != "" {
		fixture, err := seed.Load(o.seedFile)
		if err != nil {
			return nil, err
		}
		if _, err := seed.Apply(ctxOf(cmd), fixture, a.users, a.books, logger); err != nil {
			return nil, fmt.Errorf("seed %s: %w", o.seedFile, err)
		}
	}
	return a, nil
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "List seeded books whose title, author or genre contains keyword (case-sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return writeBooks(cmd.OutOrStdout(), opts.format, a.books.Search(ctxOf(cmd), args[0]))
		},
	}
}

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every seeded book in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return writeBooks(cmd.OutOrStdout(), opts.format, a.books.Catalog(ctxOf(cmd)))
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario of bookstore operations and report each step",
		Long: "Run executes the steps of a YAML scenario in order against one in-memory bookstore,\n" +
			"after applying --seed and the scenario's own seed block. It exits non-zero when a\n" +
			"step's expect/expect_count assertion does not hold.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			report, err := scenario.NewRunner(a.users, a.books, a.logger).Run(ctxOf(cmd), sc)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), opts.format, report); err != nil {
				return err
			}
			if report.Failures > 0 {
				return fmt.Errorf("%w: %d of %d steps", errExpectationsFailed, report.Failures, len(report.Steps))
			}
			return nil
		},
	}
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
