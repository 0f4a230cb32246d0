package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
)

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := postgres.Migrate(cmd.Context(), e.cfg.Database.DSN, e.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s).\n", n)
			return nil
		},
	}
}
