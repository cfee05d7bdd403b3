package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitesmith/sitesmith/internal/cache"
	"github.com/sitesmith/sitesmith/internal/render"
)

func newStatsCmd() *cobra.Command {
	var (
		redisURL string
		reset    bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show or reset cache hit/miss statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if redisURL == "" {
				return &exitError{
					code: exitCodeBadInput,
					err:  errors.New("stats requires --redis or REDIS_URL; the in-process cache keeps no shared counters"),
				}
			}

			store, err := cache.NewRedisStoreURL(redisURL)
			if err != nil {
				return &exitError{code: exitCodeBadInput, err: err}
			}
			defer store.Close()

			manager := cache.NewManager(store)
			if reset {
				return manager.ResetStats(cmd.Context())
			}

			s := manager.Stats(cmd.Context())
			if asJSON {
				return writeJSON(cmd, s)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.CacheStats(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&redisURL, "redis", os.Getenv("REDIS_URL"), "redis URL holding the shared cache")
	cmd.Flags().BoolVar(&reset, "reset", false, "reset the hit/miss counters")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of styled output")
	return cmd
}
