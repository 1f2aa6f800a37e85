// Package option provides the option 82 encode, decode and batch commands.
package option

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/andrei-cloud/dhcp_o82/internal/batch"
	"github.com/andrei-cloud/dhcp_o82/internal/cli"
	"github.com/andrei-cloud/dhcp_o82/internal/config"
	"github.com/andrei-cloud/dhcp_o82/pkg/option82"
)

var errNoRepresentation = errors.New("no representation in requested format")

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect HEX",
		Short: "Decode hex value and show sub option details",
		Long: `Decode hex value and show sub option details.

Returns a breakdown of hex contents.

  06:0B:31:30:2E:31:2E:31:30:33:2E:34:38

  sub-option: 6 (0x6), name: SUBSCRIBER_ID, length: 11 (0xb)
    val: 31:30:2e:31:2e:31:30:33:2e:34:38
    string: 10.1.103.48`,
		Example: `  # Show all sub options
  o82 inspect 06:0B:31:30:2E:31:2E:31:30:33:2E:34:38

  # Print only the circuit id as vlan-module-port
  o82 inspect 01:06:00:04:02:24:02:06 --sub-option circuit --format vlan-module-port`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().String("sub-option", "", "print a single sub option (circuit, remote, subscriber or a number)")
	cmd.Flags().String("format", "hex", "format for --sub-option (vlan-module-port, hex, string)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	c, err := option82.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to decode %q: %w", args[0], err)
	}
	log.Debug().Int("sub_options", c.Len()).Msg("decoded option 82")

	subOpt, _ := cmd.Flags().GetString("sub-option")
	if subOpt == "" {
		fmt.Fprintln(cmd.OutOrStdout(), c)
		return nil
	}

	id, err := parseSubOption(subOpt)
	if err != nil {
		return err
	}
	formatName, _ := cmd.Flags().GetString("format")
	format, err := option82.ParseFormat(formatName)
	if err != nil {
		return err
	}

	val, ok := c.Value(id, format)
	if !ok {
		return fmt.Errorf("%s: %w (%s)", id, errNoRepresentation, format)
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)

	return nil
}

func parseSubOption(s string) (option82.SubOptionID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circuit", "circuit-id", "circuit_id":
		return option82.CircuitID, nil
	case "remote", "remote-id", "remote_id":
		return option82.RemoteID, nil
	case "subscriber", "subscriber-id", "subscriber_id":
		return option82.SubscriberID, nil
	}

	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown sub option %q", s)
	}

	return option82.SubOptionID(n), nil
}

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates lookup key (hex) for the supplied sub options",
		Long: `Creates lookup key (hex) for the supplied sub options.
At least one of circuit id, remote id or subscriber id is required, unless
the values are entered interactively.`,
		Example: `  # Circuit id from vlan-module-port and a MAC address remote id
  o82 create -c 548-2-1 -r 4c71.0c45.6300

  # Hex only
  o82 create -s MY_SUB_ID_NAME --to-hex

  # Fill in the values in a form
  o82 create --interactive`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().StringP("circuit-id", "c", "",
		"String value of a circuit id use the following format. vlan-module-port example: 548-1-6")
	cmd.Flags().StringP("remote-id", "r", "", "String or MAC address for remote id.")
	cmd.Flags().StringP("subscriber-id", "s", "", "A string value to use for subscriber id.")
	cmd.Flags().Bool("to-hex", false, "Display only hex value.")
	cmd.Flags().BoolP("interactive", "i", false, "Enter the sub options in an interactive form.")

	return cmd
}

func runCreate(cmd *cobra.Command, _ []string) error {
	circuitID, _ := cmd.Flags().GetString("circuit-id")
	remoteID, _ := cmd.Flags().GetString("remote-id")
	subscriberID, _ := cmd.Flags().GetString("subscriber-id")
	toHex, _ := cmd.Flags().GetBool("to-hex")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if interactive {
		values, ok, err := runCreateTUI(cmd, circuitID, remoteID, subscriberID)
		if err != nil {
			return fmt.Errorf("interactive form failed: %w", err)
		}
		if !ok {
			return errors.New("cancelled")
		}
		circuitID, remoteID, subscriberID = values[0], values[1], values[2]
	}

	c, err := cli.Encode(circuitID, remoteID, subscriberID)
	if err != nil {
		return err
	}

	if toHex {
		h, err := c.Hex()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h)

		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), c)

	return nil
}

// NewCreateFromCommand creates the create-from batch command.
func NewCreateFromCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-from FILE_IN [FILE_OUT]",
		Short: "Process a csv document and append hex lookup keys to a new file",
		Long: `Process a csv document and append hex lookup keys to a new file.

Uses the following fields to generate the hex for an option 82 packet.
At least one of these sub options must exist.

  circuit_id - string or use vlan, module, and port - all int
  remote_id - A string or mac address
  subscriber_id - string value

The output defaults to FILE_IN with the configured suffix (batch.suffix).`,
		Example: `  vlan,module,port,remote_id
  548,1,1,switch1
  548,1,4,switch1
  548,1,7,switch1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileIn := args[0]
			fileOut := batch.DefaultOutputPath(fileIn, config.Get().Batch.Suffix)
			if len(args) == 2 {
				fileOut = args[1]
			}

			rows, err := batch.ProcessFile(fileIn, fileOut)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", rows, fileOut)

			return nil
		},
	}
}

// NewSubOptionsCommand creates the command listing recognized sub options.
func NewSubOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suboptions",
		Short: "List recognized sub options",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cli.PrintSubOptions(cmd.OutOrStdout())
		},
	}
}
