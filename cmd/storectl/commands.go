package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"listing-marketplace/internal/config"
	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/infrastructure/database"
	"listing-marketplace/internal/repository"
	"listing-marketplace/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type app struct {
	out        io.Writer
	loadConfig func() (*config.Config, error)
	openStore  func(ctx context.Context, opts storage.Options) (storage.KeyValueStore, error)
}

func newRootCmd(a *app) *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:          "storectl",
		Short:        "Inspect and maintain the listing store",
		SilenceUsage: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "timeout for store operations")

	root.AddCommand(
		newDumpCmd(a, &timeout),
		newStatsCmd(a, &timeout),
		newClearCmd(a, &timeout),
		newMigrateCmd(a),
	)
	return root
}

// withStore loads the configuration, opens the store and runs fn against it.
func (a *app) withStore(cmd *cobra.Command, timeout time.Duration, fn func(ctx context.Context, cfg *config.Config, store storage.KeyValueStore) error) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	store, err := a.openStore(ctx, cfg.StorageOptions())
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	defer store.Close()

	return fn(ctx, cfg, store)
}

func newDumpCmd(a *app, timeout *time.Duration) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the stored listings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, *timeout, func(ctx context.Context, cfg *config.Config, store storage.KeyValueStore) error {
				if raw {
					data, err := store.Get(ctx, cfg.StoreKey)
					if errors.Is(err, domain.ErrKeyNotFound) {
						return fmt.Errorf("key %q is not set", cfg.StoreKey)
					}
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(a.out, string(data))
					return err
				}

				listings := repository.NewKVListingRepository(store, cfg.StoreKey, 0).Load(ctx)
				out, err := json.MarshalIndent(listings, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, string(out))
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored value verbatim, even if it is not valid JSON")
	return cmd
}

func newStatsCmd(a *app, timeout *time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the number of listings and the stored size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, *timeout, func(ctx context.Context, cfg *config.Config, store storage.KeyValueStore) error {
				stats, err := repository.NewKVListingRepository(store, cfg.StoreKey, 0).Stats(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(a.out, "backend=%s key=%s listings=%d bytes=%d\n",
					store.Name(), cfg.StoreKey, stats.Listings, stats.Bytes)
				return err
			})
		},
	}
}

func newClearCmd(a *app, timeout *time.Duration) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear the store without --yes")
			}
			return a.withStore(cmd, *timeout, func(ctx context.Context, cfg *config.Config, store storage.KeyValueStore) error {
				if err := store.Delete(ctx, cfg.StoreKey); err != nil {
					return err
				}
				_, err := fmt.Fprintf(a.out, "cleared %s from %s\n", cfg.StoreKey, store.Name())
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func newMigrateCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cfg.StoreBackend != storage.BackendPostgres {
				return fmt.Errorf("migrations only apply to the postgres backend, not %q", cfg.StoreBackend)
			}

			version, err := database.MigrateUp(dir, cfg.StorageOptions().Postgres)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "schema at version %d\n", version)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory containing the migration files")
	return cmd
}
