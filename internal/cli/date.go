package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/damacus/iron-kit/internal/date"
	"github.com/spf13/cobra"
)

// NewDateCmd creates the date command and its subcommands.
func NewDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Ages, month boundaries, seasons and relative times",
	}

	cmd.AddCommand(newAgeCmd())
	cmd.AddCommand(newMonthCmd())
	cmd.AddCommand(newSeasonCmd())
	cmd.AddCommand(newAgoCmd())
	cmd.AddCommand(newOffsetCmd())

	return cmd
}

func newAgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "age BIRTHDAY",
		Short: "Print the age in whole years for a YYYY-MM-DD birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birthday, err := time.ParseInLocation(time.DateOnly, args[0], time.Local)
			if err != nil {
				return fmt.Errorf("birthday must be YYYY-MM-DD: %w", err)
			}
			age, err := date.Age(birthday)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), age)
			return nil
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month [DATE]",
		Short: "Print the first and last instant of the month holding DATE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if len(args) > 0 {
				parsed, err := time.ParseInLocation(time.DateOnly, args[0], time.Local)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
				}
				at = parsed
			}
			const layout = "2006-01-02 15:04:05.000"
			fmt.Fprintln(cmd.OutOrStdout(), date.FirstDayOfMonth(at).Format(layout))
			fmt.Fprintln(cmd.OutOrStdout(), date.LastDayOfMonth(at).Format(layout))
			return nil
		},
	}
}

func newSeasonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "season",
		Short: "Print the current season",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), date.CurrentSeason())
		},
	}
}

func newAgoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ago TIMESTAMP",
		Short: "Render an RFC 3339 timestamp relative to now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := time.Parse(time.RFC3339, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), date.DisplayTime(at.Local()))
			return nil
		},
	}
}

func newOffsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offset DAYS",
		Short: "Print today moved by DAYS, which may be negative",
		Long:  "Print today moved by DAYS. Put -- before a negative count: kit date offset -- -7",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), date.OffsetDate(days).Format(date.DisplayLayout))
			return nil
		},
	}
}
