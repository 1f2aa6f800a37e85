// Package cli provides centralized command registration.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrei-cloud/dhcp_o82/internal/commands/cli/option"
	"github.com/andrei-cloud/dhcp_o82/internal/commands/cli/server"
)

// RegisterCommands registers all root commands.
func RegisterCommands(root *cobra.Command) error {
	root.AddCommand(option.NewInspectCommand())
	root.AddCommand(option.NewCreateCommand())
	root.AddCommand(option.NewCreateFromCommand())
	root.AddCommand(option.NewSubOptionsCommand())
	root.AddCommand(server.NewServeCommand())

	return nil
}
