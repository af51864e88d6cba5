// Package commands implements the stylebot CLI commands.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stylebot-ai/support-engine/cmd/stylebot/ui"
	"github.com/stylebot-ai/support-engine/internal/chat"
	"github.com/stylebot-ai/support-engine/internal/config"
	"github.com/stylebot-ai/support-engine/internal/observability"
	"github.com/stylebot-ai/support-engine/internal/tabular"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *observability.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stylebot",
	Short: "StyleBot CLI for training and querying the support engine",
	Long: `StyleBot CLI provides commands for working with the rule-based
customer-support engine.

Use this tool to:
- Train the knowledge base from the configured data source
- Ask one-off questions or chat interactively
- Inspect generated training scenarios`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := "warn"
		if verbose {
			level = "debug"
		}
		logger = observability.NewLogger(observability.LogConfig{
			Level:       level,
			Format:      "console",
			ServiceName: "stylebot",
		})

		ui.SetNoColor(noColor)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newScenariosCmd())
	rootCmd.AddCommand(newTopProductsCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newService loads the data source and trains a chat service,
// showing a spinner while it works.
func newService(ctx context.Context) *chat.Service {
	spin := ui.NewSpinner("Loading data and training knowledge base...")
	spin.Start()
	store := tabular.Open(ctx, cfg.Data, logger)
	service := chat.NewService(cfg.Bot, store, logger)
	spin.Stop()

	if store.Synthetic {
		ui.Warning("Data source unavailable, trained on the built-in synthetic dataset")
	}
	return service
}
