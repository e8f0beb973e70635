package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/mock_ecom/internal/seed"
	"github.com/Skotchmaster/mock_ecom/pkg/config"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the mock catalog when it is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			l := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, err := openStore(ctx, cfg, l)
			if err != nil {
				return err
			}
			defer store.Close(context.Background())

			added, err := seed.Run(ctx, store)
			if err != nil {
				return err
			}
			l.Info("seed finished", "added", added)
			return nil
		},
	}
}
