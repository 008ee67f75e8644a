package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherchat/cipherchat/pkg/cipher"
)

// codec pairs an encoder with its decoder for the encode/decode commands.
type codec struct {
	name   string
	short  string
	encode func(string) string
	decode func(string) (string, error)
}

// codecs is the list of reversible text codecs exposed on the CLI.
var codecs = []codec{
	{
		name:   "base64",
		short:  "standard base64 with padding",
		encode: cipher.Base64Encode,
		decode: cipher.Base64Decode,
	},
	{
		name:   "hex",
		short:  "lowercase hex, space-separated per character",
		encode: cipher.HexEncode,
		decode: cipher.HexDecode,
	},
	{
		name:   "binary",
		short:  "8-bit binary groups, space-separated",
		encode: cipher.BinaryEncode,
		decode: cipher.BinaryDecode,
	},
}

// encodeCommand creates the encode command with one subcommand per codec.
func (c *CLI) encodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode text as base64, hex, or binary",
		Long: `Encode text into a textual representation.

Examples:
  cipherchat encode base64 "hello"
  cipherchat encode binary Hi
  echo secret | cipherchat encode hex`,
	}

	for _, cd := range codecs {
		cd := cd
		cmd.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("%s [text]", cd.name),
			Short: fmt.Sprintf("Encode text as %s", cd.short),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := textArg(cmd, args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), cd.encode(text))
				return nil
			},
		})
	}

	return cmd
}

// decodeCommand creates the decode command with one subcommand per codec.
func (c *CLI) decodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64, hex, or binary back to text",
	}

	for _, cd := range codecs {
		cd := cd
		cmd.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("%s [text]", cd.name),
			Short: fmt.Sprintf("Decode %s", cd.short),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := textArg(cmd, args)
				if err != nil {
					return err
				}
				out, err := cd.decode(text)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			},
		})
	}

	return cmd
}
