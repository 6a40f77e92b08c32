package cli

import (
	"fmt"
	"os"

	"github.com/damacus/iron-kit/internal/stream"
	"github.com/spf13/cobra"
)

// NewStreamCmd creates the stream command and its subcommands.
func NewStreamCmd() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Read files under a named character encoding",
		Long: `Read files as text, decoding them from --encoding into UTF-8.

Encoding names follow the WHATWG and IANA registries, for example
UTF-8, GBK, Shift_JIS or ISO-8859-1.`,
	}

	cmd.PersistentFlags().StringVarP(&encoding, "encoding", "e", stream.DefaultEncoding, "Character encoding of the input")

	cmd.AddCommand(&cobra.Command{
		Use:   "cat FILE",
		Short: "Print a file decoded to UTF-8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := stream.ReadFile(args[0], encoding)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "lines FILE",
		Short: "Print the numbered lines of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := stream.ReadFileLines(args[0], encoding)
			if err != nil {
				return err
			}
			for i, line := range lines {
				fmt.Fprintf(cmd.OutOrStdout(), "%6d  %s\n", i+1, line)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy SRC to DST byte for byte",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.Open(args[0])
			if err != nil {
				return err
			}
			dst, err := os.Create(args[1])
			if err != nil {
				stream.Closings(src)
				return err
			}
			n, err := stream.CopyClose(dst, src, true, true)
			if err != nil {
				return fmt.Errorf("copy %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "copied %d bytes\n", n)
			return nil
		},
	})

	return cmd
}
