package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk-backend/internal/app"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// exitMismatches is returned by ledger verify when the ledger and the
// case table disagree.
const exitMismatches = 2

func ledgerCmd(e *env) *cobra.Command {
	ledger := &cobra.Command{Use: "ledger", Short: "Inspect the state-history ledger"}
	ledger.AddCommand(ledgerVerifyCmd(e))
	return ledger
}

func ledgerVerifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Compare every case's state with its latest ledger record",
		Long: `Reports cases whose stored state differs from the state of their most
recent history record, or that have no history at all. Exits with status 2
when mismatches are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				mismatches, err := svc.Cases.VerifyLedger(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(mismatches) == 0 {
					fmt.Fprintln(out, "Ledger consistent.")
					return nil
				}
				renderMismatches(out, mismatches)
				return &exitError{
					code: exitMismatches,
					msg:  fmt.Sprintf("%d case(s) disagree with the ledger", len(mismatches)),
				}
			})
		},
	}
}

func renderMismatches(w io.Writer, mismatches []domain.CaseMismatch) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Case", "Case state", "Ledger state", "Last record"})
	for _, m := range mismatches {
		ledgerState := "(none)"
		if m.LedgerState != nil {
			ledgerState = m.LedgerState.String()
		}
		last := ""
		if m.LastRecord != nil {
			last = m.LastRecord.UTC().Format(time.RFC3339)
		}
		tw.AppendRow(table.Row{m.CaseID, m.CaseState, ledgerState, last})
	}
	tw.Render()
}
