package main

import (
	"context"
	"fmt"
	"os"

	"github.com/andrei-cloud/dhcp_o82/internal/commands/cli"
)

// main builds the command tree and runs it.
func main() {
	rootCmd, err := cli.NewRootCommand()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
