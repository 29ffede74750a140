package main

import (
	"errors"
	"fmt"

	"civic/pkg/tckn"

	"github.com/spf13/cobra"
)

var errInvalidNumbers = errors.New("some identity numbers are invalid")

// tcknCommand groups the offline identity number tools. None of them touch
// the database.
func tcknCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tckn",
		Short: "Generates, completes and validates identity numbers",
	}

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Prints distinct random identity numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("count")

			numbers, err := tckn.GenerateBatch(n)
			if err != nil {
				return fmt.Errorf("could not generate identity numbers: %w", err)
			}
			for _, number := range numbers {
				fmt.Fprintln(cmd.OutOrStdout(), number)
			}

			return nil
		},
	}
	generate.Flags().IntP("count", "n", 1, "How many numbers to generate")

	validate := &cobra.Command{
		Use:   "validate NUMBER...",
		Short: "Checks identity numbers and exits non-zero if any is invalid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, number := range args {
				if err := tckn.Check(number); err != nil {
					invalid++
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid\t%s\n", number, err)

					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tvalid\n", number)
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidNumbers, invalid, len(args))
			}

			return nil
		},
	}

	complete := &cobra.Command{
		Use:   "complete PREFIX",
		Short: "Appends the two check digits to a 9 digit prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := tckn.Complete(args[0])
			if err != nil {
				return fmt.Errorf("could not complete identity number: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), number)

			return nil
		},
	}

	cmd.AddCommand(generate, validate, complete)

	return cmd
}
