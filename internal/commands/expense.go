package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bueno-budget/bueno/internal/ledger"
	"github.com/bueno-budget/bueno/internal/store"
)

func newExpenseCommand(flags *globalFlags) *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Expected vs. actual expenses",
	}
	expenseCmd.AddCommand(newExpenseAddCommand(flags), newExpenseListCommand(flags))
	return expenseCmd
}

func newExpenseAddCommand(flags *globalFlags) *cobra.Command {
	var fields ledger.ExpenseFields
	var recurring bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			fields.Recurring = strconv.FormatBool(recurring)
			if err := a.ledger.SubmitExpense(fields); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Expense entry added.")
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&fields.Description, "description", "", "what the expense is for")
	cmd.Flags().StringVar(&fields.Expected, "expected", "", "expected amount (default 0)")
	cmd.Flags().StringVar(&fields.Actual, "actual", "", "actual amount (default 0)")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "the expense repeats")

	return cmd
}

func newExpenseListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expense entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			entries, err := a.ledger.ListExpenses()
			if err != nil {
				return err
			}

			rows := make([]store.Row, len(entries))
			for i, e := range entries {
				rows[i] = ledger.MarshalExpense(e)
			}
			return printTable(cmd.OutOrStdout(), ledger.ExpenseSchema.Header(), rows)
		},
	}
}
