package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var errAdminOnly = errors.New("this command needs an admin session")

func adminCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Employee administration and reports",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := st.init(); err != nil {
				return err
			}
			if err := st.requireSession(); err != nil {
				return err
			}
			if !st.session.IsAdmin() {
				return errAdminOnly
			}
			return nil
		},
	}
	cmd.AddCommand(
		employeesCmd(st),
		attendanceListCmd(st),
		estimateCmd(st),
		exportCmd(st),
	)
	return cmd
}

func employeesCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "List employees",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			q, _ := cmd.Flags().GetString("q")
			list, err := st.api.Employees(ctx, q)
			if err != nil {
				return err
			}
			st.print(st.view.Employees(list))
			return nil
		}),
	}
	cmd.Flags().String("q", "", "Filter by name or email")
	return cmd
}

func attendanceListCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "List attendance across employees",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetString("user")
			records, err := st.api.Attendance(ctx, userID, rangeFlags(cmd))
			if err != nil {
				return err
			}
			st.print(st.view.Attendance(records))
			return nil
		}),
	}
	cmd.Flags().String("user", "", "Only this employee id")
	addRangeFlags(cmd)
	return cmd
}

func estimateCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate pay for an employee",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetString("user")
			est, err := st.api.Estimate(ctx, userID, rangeFlags(cmd))
			if err != nil {
				return err
			}
			st.print(st.view.Estimate(est))
			return nil
		}),
	}
	cmd.Flags().String("user", "", "Employee id")
	_ = cmd.MarkFlagRequired("user")
	addRangeFlags(cmd)
	return cmd
}

func exportCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the attendance and payroll workbook",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetString("user")
			raw, err := st.api.ExportAttendance(ctx, userID, rangeFlags(cmd))
			if err != nil {
				return err
			}
			return writeFile(st, cmd, raw)
		}),
	}
	cmd.Flags().String("user", "", "Only this employee id")
	cmd.Flags().String("out", "attendance.xlsx", "Output file")
	addRangeFlags(cmd)
	return cmd
}
