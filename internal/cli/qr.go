package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cipherchat/cipherchat/pkg/qr"
	"github.com/cipherchat/cipherchat/pkg/stego"
)

// qrCommand creates the qr command.
func (c *CLI) qrCommand() *cobra.Command {
	var (
		size   int
		scale  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "qr [text]",
		Short: "Render a toy QR-style code for text",
		Long: `Render a QR-looking matrix seeded from the text's fingerprint.
The result has the familiar finder squares but is decorative only;
no real scanner will read it.

Without --output the matrix is drawn as block characters on stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}

			if output != "" {
				img, err := qr.Render(text, size, scale)
				if err != nil {
					return err
				}
				if err := stego.WriteImage(output, img); err != nil {
					return err
				}
				printSuccess("Rendered %dx%d code", size, size)
				printFile(output)
				return nil
			}

			m, err := qr.Matrix(text, size)
			if err != nil {
				return err
			}
			var b strings.Builder
			for _, row := range m {
				for _, on := range row {
					if on {
						b.WriteString("██")
					} else {
						b.WriteString("  ")
					}
				}
				b.WriteByte('\n')
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 25, "matrix size in modules (minimum 15)")
	cmd.Flags().IntVar(&scale, "scale", 8, "pixels per module for image output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write a PNG instead of printing")
	return cmd
}
