package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the configuration resolved by the root command, or the
// defaults when none was stored.
func configFrom(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.Load(viper.New())
}

// initRepository opens the configured store and loads the ledger from it.
// The returned close function releases the store.
func initRepository(ctx context.Context) (*ledger.Repository, func(), error) {
	cfg := configFrom(ctx)

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	repo, err := ledger.Open(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return repo, func() { _ = store.Close() }, nil
}

// viewFlag reads the --view flag of cmd.
func viewFlag(cmd *cobra.Command) (model.View, error) {
	raw, _ := cmd.Flags().GetString("view")
	v, err := model.ParseView(strings.TrimSpace(raw))
	if err != nil {
		return "", common.NewUserError("invalid --view", err)
	}
	return v, nil
}

func addViewFlag(cmd *cobra.Command) {
	cmd.Flags().String("view", string(model.ViewPersonal), "view: personal, company or income")
}
