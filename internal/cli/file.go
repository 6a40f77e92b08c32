package cli

import (
	"fmt"
	"path/filepath"

	"github.com/damacus/iron-kit/internal/file"
	"github.com/spf13/cobra"
)

// NewFileCmd creates the file command and its subcommands.
func NewFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Extensions, sizes, disk space and recursive deletes",
	}

	cmd.AddCommand(newExtCmd())
	cmd.AddCommand(newSizeCmd())
	cmd.AddCommand(newSpaceCmd())
	cmd.AddCommand(newRmCmd())
	cmd.AddCommand(newRootDirCmd())

	return cmd
}

func newExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ext NAME",
		Short: "Print the extension of NAME, dot included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, ok := file.Ext(args[0])
			if !ok {
				return fmt.Errorf("%s has no extension", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ext)
			return nil
		},
	}
}

func newSizeCmd() *cobra.Command {
	var unitName string

	cmd := &cobra.Command{
		Use:   "size PATH",
		Short: "Print the size of a file, rounded up to --unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := file.ParseSizeUnit(unitName)
			if err != nil {
				return err
			}
			size, err := file.Size(args[0], unit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", size, unit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", "B", "Size unit: B, K, M, G or T")

	return cmd
}

func newSpaceCmd() *cobra.Command {
	var unitName string

	cmd := &cobra.Command{
		Use:   "space [PATH]",
		Short: "Print total and free space of the volume holding PATH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			unit, err := file.ParseSizeUnit(unitName)
			if err != nil {
				return err
			}
			total, err := file.TotalSpace(path, unit)
			if err != nil {
				return err
			}
			free, err := file.FreeSpace(path, unit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d %s\n", total, unit)
			fmt.Fprintf(cmd.OutOrStdout(), "free:  %d %s\n", free, unit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", "G", "Size unit: B, K, M, G or T")

	return cmd
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm PATH...",
		Short: "Delete files and directory trees",
		Long: `Delete each PATH and, for directories, everything below it.

The first entry that cannot be removed stops the command. Entries already
removed stay removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := file.Deletes(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", path)
			}
			return nil
		},
	}
}

func newRootDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root [PATH]",
		Short: "Print the filesystem root of PATH and the well-known directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				root, err := file.Root(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, root)
				return nil
			}

			system, err := file.SystemRoot()
			if err != nil {
				return err
			}
			user, err := file.UserDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "root: %s\n", system)
			fmt.Fprintf(out, "user: %s\n", user)
			if home, err := file.UserHomeDir(); err == nil {
				fmt.Fprintf(out, "home: %s\n", home)
			}
			fmt.Fprintf(out, "temp: %s\n", filepath.Clean(file.TempDir()))
			return nil
		},
	}
}
