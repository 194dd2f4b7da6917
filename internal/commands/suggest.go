package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bueno-budget/bueno/internal/ledger"
	"github.com/bueno-budget/bueno/internal/store"
)

func newSuggestCommand(flags *globalFlags) *cobra.Command {
	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggestions for improvements",
	}
	suggestCmd.AddCommand(newSuggestAddCommand(flags), newSuggestListCommand(flags))
	return suggestCmd
}

func newSuggestAddCommand(flags *globalFlags) *cobra.Command {
	var fields ledger.SuggestionFields

	cmd := &cobra.Command{
		Use:   "add <suggestion>",
		Short: "Submit a suggestion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			fields.Suggestion = args[0]
			if err := a.ledger.SubmitSuggestion(fields); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Suggestion submitted. Thank you!")
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Name, "name", "", "your name")

	return cmd
}

func newSuggestListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			entries, err := a.ledger.ListSuggestions()
			if err != nil {
				return err
			}

			rows := make([]store.Row, len(entries))
			for i, e := range entries {
				rows[i] = ledger.MarshalSuggestion(e)
			}
			return printTable(cmd.OutOrStdout(), ledger.SuggestionSchema.Header(), rows)
		},
	}
}
