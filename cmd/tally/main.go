package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/config"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var cfgFile string
	settings := viper.New()

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "🧾 Household and site expense tracker",
		Long: `tally keeps three ledgers side by side: personal spending, purchases made
for company sites (with a reimbursed flag), and income.

Record transactions from the command line, import bank statements, or browse
everything in the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := initConfig(settings, cfgFile)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/tally/config.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	cmd.PersistentFlags().String("db", "", "database path (default: "+config.DefaultDatabasePath+")")
	cmd.PersistentFlags().Bool("ephemeral", false, "keep data in memory only")

	// Bind flags to viper
	_ = settings.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = settings.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = settings.BindPFlag("database.path", cmd.PersistentFlags().Lookup("db"))
	_ = settings.BindPFlag("storage.ephemeral", cmd.PersistentFlags().Lookup("ephemeral"))

	cmd.AddCommand(addCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(deleteCmd())
	cmd.AddCommand(reimburseCmd())
	cmd.AddCommand(statsCmd())
	cmd.AddCommand(categoriesCmd())
	cmd.AddCommand(importOFXCmd())
	cmd.AddCommand(uiCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err to w in the error style.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, cli.FormatError(err.Error()))
}

func initConfig(v *viper.Viper, cfgFile string) (config.Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get home directory: %w", err)
		}

		v.AddConfigPath(fmt.Sprintf("%s/.config/tally", home))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// TALLY_DATABASE_PATH, TALLY_LOGGING_LEVEL, ...
	v.SetEnvPrefix("TALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := config.Load(v)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	if err := common.SetupLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		return config.Config{}, fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("Configuration loaded",
		"config_file", v.ConfigFileUsed(),
		"backend", cfg.Backend,
		"database", cfg.DatabasePath)
	return cfg, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tally %s\n", version)
		},
	}
}
