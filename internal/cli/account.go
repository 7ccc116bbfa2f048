package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const envPassword = "ATTENDANCE_PASSWORD"

func passwordFlag(cmd *cobra.Command) (string, error) {
	pw, _ := cmd.Flags().GetString("password")
	if pw == "" {
		pw = os.Getenv(envPassword)
	}
	if pw == "" {
		return "", fmt.Errorf("password is required (--password or %s)", envPassword)
	}
	return pw, nil
}

func loginCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			pw, err := passwordFlag(cmd)
			if err != nil {
				return err
			}
			s, err := st.api.Login(ctx, email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(st.out, "Logged in as %s (%s)\n", s.Name, s.Role)
			return nil
		}),
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password (env "+envPassword+")")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func registerCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an employee account and sign in",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			pw, err := passwordFlag(cmd)
			if err != nil {
				return err
			}
			s, err := st.api.Register(ctx, name, email, pw)
			if err != nil {
				return err
			}
			fmt.Fprintf(st.out, "Welcome, %s\n", s.Name)
			return nil
		}),
	}
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Password, at least 6 characters (env "+envPassword+")")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: st.run(func(ctx context.Context, _ *cobra.Command, _ []string) error {
			if st.session.Token == "" {
				fmt.Fprintln(st.out, "Not logged in")
				return nil
			}
			if err := st.api.Logout(ctx); err != nil {
				st.logger.Debug("server logout failed", zap.Error(err))
			}
			fmt.Fprintln(st.out, "Logged out")
			return nil
		}),
	}
}

func whoamiCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: st.run(func(ctx context.Context, _ *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			me, err := st.api.Me(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(st.out, "%s <%s>\nrole: %s\ndepartment: %s\nposition: %s\nhourly rate: $%.2f\n",
				me.Name, me.Email, me.Role, me.Department, me.Position, me.HourlyRate)
			return nil
		}),
	}
}
