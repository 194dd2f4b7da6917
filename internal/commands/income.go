package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bueno-budget/bueno/internal/ledger"
	"github.com/bueno-budget/bueno/internal/store"
)

func newIncomeCommand(flags *globalFlags) *cobra.Command {
	incomeCmd := &cobra.Command{
		Use:   "income",
		Short: "Expected vs. actual income",
	}
	incomeCmd.AddCommand(newIncomeAddCommand(flags), newIncomeListCommand(flags))
	return incomeCmd
}

func newIncomeAddCommand(flags *globalFlags) *cobra.Command {
	var fields ledger.IncomeFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			if err := a.ledger.SubmitIncome(fields); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Income entry added.")
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&fields.Source, "source", "", "where the income comes from")
	cmd.Flags().StringVar(&fields.Expected, "expected", "", "expected amount (default 0)")
	cmd.Flags().StringVar(&fields.Actual, "actual", "", "actual amount (default 0)")
	cmd.Flags().StringVar(&fields.Notes, "notes", "", "free-form notes")

	return cmd
}

func newIncomeListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List income entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			entries, err := a.ledger.ListIncome()
			if err != nil {
				return err
			}

			rows := make([]store.Row, len(entries))
			for i, e := range entries {
				rows[i] = ledger.MarshalIncome(e)
			}
			return printTable(cmd.OutOrStdout(), ledger.IncomeSchema.Header(), rows)
		},
	}
}
