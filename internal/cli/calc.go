package cli

import (
	"fmt"

	"github.com/damacus/iron-kit/internal/number"
	"github.com/spf13/cobra"
)

// NewCalcCmd creates the calc command and its arithmetic subcommands.
func NewCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Exact decimal arithmetic",
		Long: `Add, subtract, multiply, divide and round numbers in exact decimal.

Operands are read as float64 and carried through their shortest decimal
form, so 0.1 + 0.2 prints 0.3. Division and rounding are half-up.
Put -- before negative operands: kit calc add -- -1.5 2`,
	}

	cmd.AddCommand(newBinaryCmd("add A B", "Add two numbers", number.Add))
	cmd.AddCommand(newBinaryCmd("sub A B", "Subtract B from A", number.Sub))
	cmd.AddCommand(newBinaryCmd("mul A B", "Multiply two numbers", number.Mul))
	cmd.AddCommand(newDivCmd())
	cmd.AddCommand(newRoundCmd())

	return cmd
}

func newBinaryCmd(use, short string, op func(a, b float64) float64) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), number.Format(op(a, b)))
			return nil
		},
	}
}

func newDivCmd() *cobra.Command {
	var scale int

	cmd := &cobra.Command{
		Use:   "div A B",
		Short: "Divide A by B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			result, err := number.DivScale(a, b, scale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), number.Format(result))
			return nil
		},
	}

	cmd.Flags().IntVarP(&scale, "scale", "s", number.DefaultScale, "Fractional digits to keep")

	return cmd
}

func newRoundCmd() *cobra.Command {
	var scale int

	cmd := &cobra.Command{
		Use:   "round V",
		Short: "Round half-up to a number of fractional digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := number.Parse(args[0])
			if err != nil {
				return err
			}
			result, err := number.Round(v, scale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), number.Format(result))
			return nil
		},
	}

	cmd.Flags().IntVarP(&scale, "scale", "s", 0, "Fractional digits to keep")

	return cmd
}

func parseOperands(args []string) (float64, float64, error) {
	a, err := number.Parse(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := number.Parse(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
