package cmd

import (
	"fmt"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const flagLogLevel = "log-level"

// NewRootCmd creates the offersctl root command. Every subcommand works offline
// on the same arithmetic the module uses on chain.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "offersctl",
		Short:         "Offline calculator for offer price curves",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error)")

	rootCmd.AddCommand(
		apyCmd(),
		priceCmd(),
		tvlCmd(),
		quoteCmd(),
	)
	return rootCmd
}

// loggerFromCmd builds a logger writing to the command's error stream.
func loggerFromCmd(cmd *cobra.Command) (log.Logger, error) {
	lvl, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", flagLogLevel, lvl, err)
	}
	return log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(level), log.ColorOption(false)).With("module", "offersctl"), nil
}
