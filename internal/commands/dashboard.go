package commands

import (
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bueno-budget/bueno/internal/store"
	"github.com/bueno-budget/bueno/internal/summary"
)

func newDashboardCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show expected vs. actual totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			income, err := a.ledger.ListIncome()
			if err != nil {
				return err
			}
			expenses, err := a.ledger.ListExpenses()
			if err != nil {
				return err
			}
			return summary.Render(cmd.OutOrStdout(), summary.Build(income, expenses), a.cfg.Display.Currency)
		},
	}
}

// printTable writes rows as aligned columns under header.
func printTable(w io.Writer, header []string, rows []store.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := io.WriteString(tw, strings.Join(header, "\t")+"\n"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := io.WriteString(tw, strings.Join(row, "\t")+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
