package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func checkInCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-in",
		Short: "Record today's check-in",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			project, _ := cmd.Flags().GetString("project")
			rec, err := st.api.CheckIn(ctx, project)
			if err != nil {
				return err
			}
			st.print(st.view.Record(rec))
			return nil
		}),
	}
	cmd.Flags().String("project", "", "Project worked on (default General)")
	return cmd
}

func checkOutCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-out",
		Short: "Record today's check-out",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			notes, _ := cmd.Flags().GetString("notes")
			rec, err := st.api.CheckOut(ctx, notes)
			if err != nil {
				return err
			}
			st.print(st.view.Record(rec))
			return nil
		}),
	}
	cmd.Flags().String("notes", "", "Notes for the day")
	return cmd
}

func todayCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's attendance",
		RunE: st.run(func(ctx context.Context, _ *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			rec, err := st.api.Today(ctx)
			if err != nil {
				return err
			}
			if rec == nil {
				fmt.Fprintln(st.out, "Not checked in today")
				return nil
			}
			st.print(st.view.Record(*rec))
			return nil
		}),
	}
}

func historyCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List your attendance records",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			records, err := st.api.MyAttendance(ctx, rangeFlags(cmd))
			if err != nil {
				return err
			}
			st.print(st.view.Attendance(records))
			return nil
		}),
	}
	addRangeFlags(cmd)
	return cmd
}

func dashboardCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show hours and estimated pay for this and last month",
		RunE: st.run(func(ctx context.Context, _ *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			d, err := st.api.Dashboard(ctx)
			if err != nil {
				return err
			}
			today, err := st.api.Today(ctx)
			if err != nil {
				return err
			}
			st.print(st.view.Dashboard(st.session.Name, d, today))
			return nil
		}),
	}
}

func payrollCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Estimate your pay for a date range",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			est, err := st.api.MyPayroll(ctx, rangeFlags(cmd))
			if err != nil {
				return err
			}
			st.print(st.view.Estimate(est))
			return nil
		}),
	}
	addRangeFlags(cmd)
	return cmd
}

func statementCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Download your payroll statement as PDF",
		RunE: st.run(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			raw, err := st.api.PayrollStatement(ctx, rangeFlags(cmd))
			if err != nil {
				return err
			}
			return writeFile(st, cmd, raw)
		}),
	}
	addRangeFlags(cmd)
	cmd.Flags().String("out", "payroll-statement.pdf", "Output file")
	return cmd
}

func leaveCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "leave",
		Short: "Show your leave balance",
		RunE: st.run(func(ctx context.Context, _ *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			balance, err := st.api.LeaveBalance(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(st.out, "Leave balance: %d days\n", balance)
			return nil
		}),
	}
}

func writeFile(st *state, cmd *cobra.Command, raw []byte) error {
	path, _ := cmd.Flags().GetString("out")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(st.out, "Saved %s (%d bytes)\n", path, len(raw))
	return nil
}
