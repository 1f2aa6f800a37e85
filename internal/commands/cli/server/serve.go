// Package server provides server-related CLI commands.
package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrei-cloud/dhcp_o82/internal/config"
	"github.com/andrei-cloud/dhcp_o82/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the option 82 lookup server",
		Long: `Start a TCP lookup server that decodes (IN) and encodes (CR) option 82 values
for DHCP servers and provisioning scripts.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	// Add serve command specific flags that can override config.
	cmd.Flags().String("host", "localhost", "Server host")
	cmd.Flags().Int("port", 1582, "Server port")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Bind serve command flags to viper.
	v := config.GetViper()
	if err := v.BindPFlag("server.host", cmd.Flags().Lookup("host")); err != nil {
		return fmt.Errorf("failed to bind host flag: %w", err)
	}
	if err := v.BindPFlag("server.port", cmd.Flags().Lookup("port")); err != nil {
		return fmt.Errorf("failed to bind port flag: %w", err)
	}

	// Initialize the server with configured host and port.
	serverAddr := fmt.Sprintf("%s:%d", v.GetString("server.host"), v.GetInt("server.port"))
	srv, err := server.NewServer(serverAddr)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stopChan)

	select {
	case <-stopChan:
	case <-cmd.Context().Done():
	}
	log.Info().Msg("shutting down server...")

	if err := srv.Stop(); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	return nil
}
