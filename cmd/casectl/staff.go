package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/casedesk-backend/internal/app"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
	authsvc "github.com/heartmarshall/casedesk-backend/internal/service/auth"
)

func staffCmd(e *env) *cobra.Command {
	c := &cobra.Command{Use: "staff", Short: "Manage staff accounts"}
	c.AddCommand(staffAddCmd(e))
	return c
}

func staffAddCmd(e *env) *cobra.Command {
	var email, name, role string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a staff account; the password is read from stdin",
		Example: `  echo 's3cret-passphrase' | casectl staff add --email=ada@firm.example --name="Ada L" --role=admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return e.withServices(cmd.Context(), func(ctx context.Context, svc *app.Services) error {
				s, err := svc.Auth.Register(ctx, authsvc.RegisterInput{
					Email:    email,
					Name:     name,
					Password: password,
					Role:     domain.StaffRole(role),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Staff %s <%s> created with role %s (id %s).\n", s.Name, s.Email, s.Role, s.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&role, "role", string(domain.StaffRoleStaff), "staff or admin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// readPassword takes the first line of r, without the line terminator.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("password must be provided on stdin")
	}
	return line, nil
}
