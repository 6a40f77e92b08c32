package cli

import (
	"fmt"

	"github.com/damacus/iron-kit/internal/text"
	"github.com/spf13/cobra"
)

// NewTextCmd creates the text command with check and mask.
func NewTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Validate and mask strings",
	}

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newMaskCmd())

	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check VALUE",
		Short: "Run every string predicate against VALUE",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			value := args[0]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "length: %t\n", text.HasLength(value))
			fmt.Fprintf(out, "text:   %t\n", text.HasText(value))
			fmt.Fprintf(out, "email:  %t\n", text.IsEmail(value))
			fmt.Fprintf(out, "phone:  %t\n", text.IsPhone(value))
			fmt.Fprintf(out, "letter: %t\n", text.IsLetter(value))
		},
	}
}

func newMaskCmd() *cobra.Command {
	var start, end int

	cmd := &cobra.Command{
		Use:   "mask VALUE",
		Short: "Replace characters between --start and --end with '*'",
		Long: `Replace the characters of VALUE from --start to --end, both inclusive
and counted in characters, with '*'. Without --end the mask runs to the end.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), text.Hidden(args[0], start, end))
		},
	}

	cmd.Flags().IntVar(&start, "start", text.Unset, "First masked character")
	cmd.Flags().IntVar(&end, "end", text.Unset, "Last masked character")

	return cmd
}
