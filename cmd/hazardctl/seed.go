package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/shenikar/sinkhole_navigator/internal/repository"
	"github.com/shenikar/sinkhole_navigator/pkg/postgres"
	redisclient "github.com/shenikar/sinkhole_navigator/pkg/redis"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	hazardsPath string
	databaseURL string
	redisAddr   string
	migrate     bool
}

func newSeedCmd() *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert hazards from a YAML file into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.hazardsPath, "hazards", "", "YAML file with hazard zones")
	cmd.Flags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL DSN")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address; when set, cached hazard lookups are invalidated after seeding")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "apply migrations from ./migrations before seeding")
	_ = cmd.MarkFlagRequired("hazards")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *seedOptions) error {
	if opts.databaseURL == "" {
		return errors.New("database URL is required (--database-url or DATABASE_URL)")
	}
	log := cmdLogger(cmd)
	ctx := cmd.Context()

	hazards, err := loadHazards(opts.hazardsPath)
	if err != nil {
		return err
	}

	if opts.migrate {
		if err := postgres.RunMigrations(opts.databaseURL, "file://migrations"); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPostgresDB(ctx, opts.databaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewHazardRepository(pool, nil)
	for i := range hazards {
		h := &hazards[i]
		if err := repo.Create(ctx, h); err != nil {
			return fmt.Errorf("failed to seed hazard %q: %w", h.Name, err)
		}
		log.WithFields(logrus.Fields{"id": h.ID, "name": h.Name}).Info("Hazard seeded")
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", h.ID, h.Name)
	}

	if opts.redisAddr != "" {
		rdb, err := redisclient.NewRedisClient(ctx, redisclient.Options{Addr: opts.redisAddr})
		if err != nil {
			return err
		}
		defer rdb.Close()
		if err := repository.NewHazardRepository(pool, rdb).InvalidateCellCache(ctx); err != nil {
			return err
		}
	}
	return nil
}
