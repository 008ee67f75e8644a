package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherchat/cipherchat/pkg/cipher"
	"github.com/cipherchat/cipherchat/pkg/errors"
)

// caesarCommand creates the caesar command with encode/decode subcommands.
func (c *CLI) caesarCommand() *cobra.Command {
	var shift int

	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Shift letters through the alphabet",
		Long: `Apply the Caesar cipher: every letter moves a fixed number of
positions through the alphabet, wrapping from z back to a. Case is
preserved and anything outside a-z passes through unchanged.

Examples:
  cipherchat caesar encode "attack at dawn"
  cipherchat caesar decode --shift 13 "nggnpx"
  echo hello | cipherchat caesar encode`,
	}
	cmd.PersistentFlags().IntVarP(&shift, "shift", "s", 0, "shift amount 0-26 (default from config)")

	encode := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text with the Caesar cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			s, err := c.resolveShift(shift)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cipher.CaesarEncode(text, s))
			return nil
		},
	}

	decode := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode Caesar-ciphered text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			s, err := c.resolveShift(shift)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cipher.CaesarDecode(text, s))
			return nil
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}

// resolveShift validates a flag shift, substituting the config default for zero.
func (c *CLI) resolveShift(shift int) (int, error) {
	if shift == 0 {
		shift = c.Config.DefaultShift
	}
	if err := errors.ValidateShift(shift); err != nil {
		return 0, err
	}
	return shift, nil
}

// xorCommand creates the xor command with encrypt/decrypt subcommands.
func (c *CLI) xorCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "xor",
		Short: "XOR text with a repeating key (base64 output)",
		Long: `Encrypt text by XORing each character with a repeating key, then
base64-encode the result. Decryption with the wrong key produces
garbage rather than an error, just like the pen-and-paper version.

This is an obfuscation toy, not real cryptography.`,
	}
	cmd.PersistentFlags().StringVarP(&key, "key", "k", "", "encryption key (required)")

	encrypt := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Encrypt text with the XOR cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			out, err := cipher.XOREncrypt(text, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	decrypt := &cobra.Command{
		Use:   "decrypt [text]",
		Short: "Decrypt XOR-ciphered base64 text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			out, err := cipher.XORDecrypt(text, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(encrypt, decrypt)
	return cmd
}

// detectCommand creates the detect command.
func (c *CLI) detectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [text]",
		Short: "Guess how a piece of text is encoded",
		Long: `Guess the encoding of text by matching its shape: base64, binary
groups, hex groups, palindromes, or plain prose. The first matching
family wins, so short plain words can read as base64.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cipher.Detect(text))
			return nil
		},
	}
}

// fingerprintCommand creates the fingerprint command.
func (c *CLI) fingerprintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [text]",
		Short: "Print the 8-digit hex fingerprint of text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cipher.Fingerprint(text))
			return nil
		},
	}
}

// strengthCommand creates the strength command.
func (c *CLI) strengthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Score a password with the length-and-classes heuristic",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			score, label := cipher.Strength(text)
			fmt.Fprintf(cmd.OutOrStdout(), "%d/100 %s\n", score, label)
			return nil
		},
	}
}

// reverseCommand creates the reverse command.
func (c *CLI) reverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [text]",
		Short: "Reverse text rune by rune",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cipher.Reverse(text))
			return nil
		},
	}
}
