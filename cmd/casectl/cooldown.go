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

func cooldownCmd(e *env) *cobra.Command {
	c := &cobra.Command{Use: "cooldown", Short: "Inspect and clear downstream cooldowns"}
	c.AddCommand(cooldownListCmd(e), cooldownClearCmd(e))
	return c
}

func cooldownListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active cooldowns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				now := time.Now()
				items, err := svc.Cooldowns.List(ctx, now)
				if err != nil {
					return err
				}
				renderCooldowns(cmd.OutOrStdout(), items, now)
				return nil
			})
		},
	}
}

func cooldownClearCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <endpoint-key>",
		Short: "Remove a cooldown so the next call goes through",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				if err := svc.Cooldowns.Clear(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cooldown %q cleared.\n", args[0])
				return nil
			})
		},
	}
}

func renderCooldowns(w io.Writer, items []domain.Cooldown, now time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No active cooldowns.")
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Endpoint", "Until", "Remaining", "Reason"})
	for _, c := range items {
		tw.AppendRow(table.Row{
			c.EndpointKey,
			c.Until.UTC().Format(time.RFC3339),
			c.Until.Sub(now).Round(time.Second),
			c.Reason,
		})
	}
	tw.Render()
}
