package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"emotebot/internal/infrastructure/database"
	"emotebot/internal/infrastructure/emotestore"
)

func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return "postgres://localhost:5432/emotebot?sslmode=disable"
}

func newMigrateCmd() *cobra.Command {
	var dsn, path string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert database migrations",
	}
	cmd.PersistentFlags().StringVar(&dsn, "database-url", databaseURL(), "postgres connection URL")
	cmd.PersistentFlags().StringVar(&path, "migrations", "migrations", "migrations directory")

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert the last migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RollbackMigrations(dsn, path, steps)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RunMigrations(dsn, path)
		},
	}, down)
	return cmd
}

// newSeedCmd replaces the emote tables with the emotes of the selected source.
func newSeedCmd(root *rootOptions) *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored emotes with those of --source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loader, err := root.loader(root.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			emotes, err := loader.LoadEmotes(ctx)
			if err != nil {
				return fmt.Errorf("load emotes: %w", err)
			}
			pool, err := database.NewPool(ctx, dsn)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := database.NewEmoteRepository(pool).ReplaceAll(ctx, emotes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d emotes stored\n", len(emotes))
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "database-url", databaseURL(), "postgres connection URL")
	return cmd
}

// newFetchCmd downloads the emote sheet from xivapi into a YAML data file.
func newFetchCmd(root *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download every emote from xivapi into a data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := *root
			src.source = "xivapi"
			loader, err := src.loader(root.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			emotes, err := loader.LoadEmotes(cmd.Context())
			if err != nil {
				return err
			}
			if err := emotestore.WriteYAML(out, emotes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d emotes written to %s\n", len(emotes), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "data/emotes.yaml", "output file")
	return cmd
}
