package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk-backend/internal/app"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/service/caseflow"
)

func caseCmd(e *env) *cobra.Command {
	c := &cobra.Command{Use: "case", Short: "Operate on cases"}
	c.AddCommand(casePurgeCmd(e), caseBoardCmd(e))
	return c
}

func casePurgeCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "purge <case-id>",
		Short: "Delete a case with its tasks, notes, notifications and history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid case id %q: %w", args[0], err)
			}
			if !yes {
				return fmt.Errorf("purge is irreversible, pass --yes to confirm")
			}
			return e.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				if err := svc.Cases.PurgeAsOperator(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Case %s purged.\n", id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the purge")
	return cmd
}

func caseBoardCmd(e *env) *cobra.Command {
	var (
		state, priority, assignee string
		includeClosed             bool
		limit                     int
	)
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the case board with stages, readiness and deadlines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := domain.CaseFilter{IncludeClosed: includeClosed, Limit: limit}
			if state != "" {
				s := domain.CaseState(state)
				f.State = &s
			}
			if priority != "" {
				p := domain.Priority(priority)
				f.Priority = &p
			}
			if assignee != "" {
				id, err := uuid.Parse(assignee)
				if err != nil {
					return fmt.Errorf("invalid --assigned-to %q: %w", assignee, err)
				}
				f.AssignedTo = &id
			}
			return e.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				views, err := svc.Cases.Board(ctx, f)
				if err != nil {
					return err
				}
				renderBoard(cmd.OutOrStdout(), views)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "only cases in this state")
	cmd.Flags().StringVar(&priority, "priority", "", "only cases with this priority")
	cmd.Flags().StringVar(&assignee, "assigned-to", "", "only cases assigned to this staff id")
	cmd.Flags().BoolVar(&includeClosed, "include-closed", false, "include closed cases")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of cases")
	return cmd
}

func renderBoard(w io.Writer, views []caseflow.CaseView) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Title", "State", "Stage", "Priority", "Ready", "Open tasks", "Deadline"})
	for _, v := range views {
		ready := ""
		if v.Evaluation.Ready {
			ready = "yes"
		}
		deadline := v.Deadline.Message
		if v.Evaluation.SLAOverdue {
			if deadline != "" {
				deadline += ", "
			}
			deadline += "SLA overdue"
		}
		tw.AppendRow(table.Row{
			v.Case.ID, v.Case.Title, v.Case.State, v.Stage, v.Case.Priority,
			ready, v.Evaluation.PendingTasks, deadline,
		})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d case(s)", len(views))})
	tw.Render()
}
