// Package cli builds the kit command line, one cobra subcommand tree per
// helper package.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is reported by kit --version.
var Version = "dev"

// NewRootCmd creates and returns the root cobra command for the kit CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kit",
		Short: "kit - everyday helpers for numbers, text, dates, files and streams",
		Long: `kit exposes the iron-kit helper packages on the command line.

Use subcommands to perform different operations:
  - calc: Exact decimal arithmetic on floating point input
  - text: Validate and mask strings
  - date: Ages, month boundaries, seasons and relative times
  - file: Extensions, sizes, disk space and recursive deletes
  - stream: Read files under a named character encoding`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupCompute := "compute"
	groupFilesystem := "filesystem"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCompute,
		Title: "Value Helpers",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Helpers",
	})

	calcCmd := NewCalcCmd()
	textCmd := NewTextCmd()
	dateCmd := NewDateCmd()
	fileCmd := NewFileCmd()
	streamCmd := NewStreamCmd()

	calcCmd.GroupID = groupCompute
	textCmd.GroupID = groupCompute
	dateCmd.GroupID = groupCompute
	fileCmd.GroupID = groupFilesystem
	streamCmd.GroupID = groupFilesystem

	// Add subcommands
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(streamCmd)

	return rootCmd
}
