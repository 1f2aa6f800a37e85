// Package cli provides the CLI command structure for o82.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrei-cloud/dhcp_o82/internal/config"
	"github.com/andrei-cloud/dhcp_o82/internal/logging"
)

var cfgFile string

// NewRootCommand creates and returns the root command with all subcommands.
func NewRootCommand() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "o82",
		Short: "Makes humans working with DHCP Option 82/RelayAgentInfo possible",
		Long: `Decodes or encodes sub options in DHCP Option 82 packets for
troubleshooting or making lease reservations on a DHCP server.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Initialize configuration before running any command.
			if err := config.Initialize(cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			// Flags override config file settings.
			v := config.GetViper()
			if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
				return fmt.Errorf("failed to bind log-level flag: %w", err)
			}
			if err := v.BindPFlag("log.format", cmd.Flags().Lookup("log-format")); err != nil {
				return fmt.Errorf("failed to bind log-format flag: %w", err)
			}

			logLevel := strings.TrimSpace(strings.ToLower(v.GetString("log.level")))
			logFormat := strings.TrimSpace(strings.ToLower(v.GetString("log.format")))
			logging.InitLogger(logLevel == "debug", logFormat == "human")

			return nil
		},
	}

	// Add persistent flags that affect all commands.
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.o82/config.yaml)")

	// Add global flags that can override config file settings.
	rootCmd.PersistentFlags().
		String("log-level", "info", "logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "human", "logging format (human, json)")

	// Register all commands.
	if err := RegisterCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return rootCmd, nil
}
