package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cipherchat/cipherchat/pkg/observability"
	"github.com/cipherchat/cipherchat/pkg/stego"
)

// stegoCommand creates the stego command with embed/extract/capacity subcommands.
func (c *CLI) stegoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stego",
		Short: "Hide and recover text in PNG images",
		Long: `Hide text in the least significant bit of an image's red channel,
or recover text hidden that way. Carriers must be PNG; the payload is
terminated by a 16-bit end marker.

Examples:
  cipherchat stego embed photo.png "meet at noon" -o secret.png
  cipherchat stego extract secret.png
  cipherchat stego capacity photo.png`,
	}

	cmd.AddCommand(c.stegoEmbedCommand())
	cmd.AddCommand(c.stegoExtractCommand())
	cmd.AddCommand(c.stegoCapacityCommand())
	return cmd
}

func (c *CLI) stegoEmbedCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "embed <carrier.png> <text>",
		Short: "Embed text into a carrier image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			carrier, text := args[0], args[1]
			if output == "" {
				output = filepath.Join(filepath.Dir(carrier), "stego-"+filepath.Base(carrier))
			}

			img, err := stego.ReadImage(carrier)
			if err != nil {
				return err
			}
			err = stego.Embed(img, text)
			observability.Transform().OnStegoEmbed(cmd.Context(), len(text), stego.Capacity(img.Bounds()), err)
			if err != nil {
				return err
			}
			if err := stego.WriteImage(output, img); err != nil {
				return err
			}

			c.Logger.Debug("embedded payload", "carrier", carrier, "bytes", len(text))
			printSuccess("Hid %d bytes in %s", len(text), carrier)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stego-<name> beside the carrier)")
	return cmd
}

func (c *CLI) stegoExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <image.png>",
		Short: "Extract hidden text from an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := stego.ReadImage(args[0])
			if err != nil {
				return err
			}
			text, err := stego.Extract(img)
			observability.Transform().OnStegoExtract(cmd.Context(), len(text), err)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func (c *CLI) stegoCapacityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <image.png>",
		Short: "Show how many bytes an image can hide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := stego.ReadImage(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", stego.Capacity(img.Bounds()))
			return nil
		},
	}
}
