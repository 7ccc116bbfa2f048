package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go-attendance/internal/client"
	"go-attendance/internal/dashboard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	defaultServer = "http://localhost:5000/api"
	envServer     = "ATTENDANCE_API"
)

var errNotLoggedIn = errors.New("not logged in, run `attendctl login` first")

// state is shared by every subcommand of one invocation.
type state struct {
	server      string
	sessionPath string
	verbose     bool

	out      io.Writer
	session  *client.Session
	snapshot client.Session
	api      *client.Client
	view     *dashboard.Renderer
	logger   *zap.Logger
}

func RootCmd(out io.Writer) *cobra.Command {
	st := &state{out: out}

	root := &cobra.Command{
		Use:           "attendctl",
		Short:         "Attendance and payroll estimation client",
		Long:          "Check in and out, review worked hours and estimated pay, and administer employees.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.init()
		},
	}
	root.SetOut(out)

	server := os.Getenv(envServer)
	if server == "" {
		server = defaultServer
	}
	root.PersistentFlags().StringVar(&st.server, "server", server, "API base URL (env "+envServer+")")
	root.PersistentFlags().StringVar(&st.sessionPath, "session", "", "Session file (default in the user config dir)")
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		loginCmd(st),
		registerCmd(st),
		logoutCmd(st),
		whoamiCmd(st),
		checkInCmd(st),
		checkOutCmd(st),
		todayCmd(st),
		historyCmd(st),
		dashboardCmd(st),
		payrollCmd(st),
		statementCmd(st),
		leaveCmd(st),
		adminCmd(st),
	)
	return root
}

func (st *state) init() error {
	logger := zap.NewNop()
	if st.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	st.logger = logger

	if st.sessionPath == "" {
		p, err := client.DefaultSessionPath()
		if err != nil {
			return fmt.Errorf("resolve session path: %w", err)
		}
		st.sessionPath = p
	}
	s, err := client.LoadSession(st.sessionPath)
	if err != nil {
		return err
	}
	st.session = s
	st.snapshot = *s
	st.api = client.New(st.server, s, client.WithLogger(logger))
	st.view = dashboard.New(st.out)
	return nil
}

// run executes fn and then persists the session if login, logout or a 401 changed it.
func (st *state) run(fn func(ctx context.Context, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		err := fn(ctx, cmd, args)
		if *st.session != st.snapshot {
			if saveErr := st.session.Save(st.sessionPath); saveErr != nil {
				return errors.Join(err, saveErr)
			}
		}
		return err
	}
}

func (st *state) requireSession() error {
	if !st.session.Valid(time.Now()) {
		return errNotLoggedIn
	}
	return nil
}

func (st *state) print(s string) {
	fmt.Fprint(st.out, s)
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD)")
}

func rangeFlags(cmd *cobra.Command) client.Range {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	return client.Range{StartDate: from, EndDate: to}
}
