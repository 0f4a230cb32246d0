// Command casectl is the operator CLI for casedesk: migrations, ledger
// verification, case purges, cooldown inspection and staff bootstrap.
//
// Usage:
//
//	casectl [--config path] <command>
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/app"
	"github.com/heartmarshall/casedesk-backend/internal/config"
)

// exitError carries a specific process exit status out of a command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// env is the state shared by every subcommand after config is loaded.
type env struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(os.Stderr, ee.msg)
		}
		os.Exit(ee.code)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "casectl",
		Short:         "Operator tooling for casedesk",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(e.configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = app.NewLogger(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "config file (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		migrateCmd(e),
		ledgerCmd(e),
		caseCmd(e),
		cooldownCmd(e),
		staffCmd(e),
		versionCmd(),
	)
	return root
}

// withServices opens a pool for the duration of fn.
func (e *env) withServices(ctx context.Context, fn func(ctx context.Context, svc *app.Services) error) error {
	pool, err := postgres.NewPool(ctx, e.cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := app.NewServices(e.cfg, pool, e.log)
	defer svc.Cases.Wait()
	return fn(ctx, svc)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
