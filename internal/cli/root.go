package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yungbote/team-alchemy-backend/internal/app"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "0.1.0"

type options struct {
	dbURL   string
	logMode string
}

// failure is an error whose message is already the line to print.
type failure struct{ msg string }

func (f *failure) Error() string { return f.msg }

func fail(format string, args ...any) error {
	return &failure{msg: fmt.Sprintf(format, args...)}
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "team-alchemy",
		Short:         "Team Alchemy - Team dynamics and psychology assessment platform",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&opts.dbURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	root.PersistentFlags().StringVar(&opts.logMode, "log-mode", "", "Log mode (development or production); empty keeps the CLI quiet")

	root.AddCommand(
		newInitCmd(opts),
		newAssessCmd(opts),
		newAnalyzeTeamCmd(opts),
		newRecommendCmd(opts),
		newVersionCmd(),
		newServeCmd(opts),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		var f *failure
		if errors.As(err, &f) {
			fmt.Fprintln(stderr, f.msg)
		} else {
			fmt.Fprintf(stderr, "✗ %v\n", err)
		}
		return 1
	}
	return 0
}

func (o *options) logger() (*logger.Logger, error) {
	if o.logMode == "" {
		return logger.Nop(), nil
	}
	return logger.New(o.logMode)
}

// openApp loads configuration, applies flag overrides and wires the app,
// which migrates the schema as a side effect.
func (o *options) openApp(ctx context.Context) (*app.App, error) {
	log, err := o.logger()
	if err != nil {
		return nil, err
	}
	cfg, err := app.LoadConfig(log)
	if err != nil {
		return nil, err
	}
	if o.dbURL != "" {
		cfg.DatabaseURL = o.dbURL
	}
	return app.NewWithConfig(ctx, cfg, log)
}

func parseID(raw, what string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fail("✗ Invalid %s id: %s", what, raw)
	}
	return uint(id), nil
}

func out(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out(cmd, "Team Alchemy version %s", Version)
		},
	}
}

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the Team Alchemy database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out(cmd, "Initializing Team Alchemy database...")
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return fail("✗ Error initializing database: %v", err)
			}
			a.Close()
			out(cmd, "✓ Database initialized successfully!")
			return nil
		},
	}
}

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.logMode == "" {
				opts.logMode = os.Getenv("LOG_MODE")
				if opts.logMode == "" {
					opts.logMode = "development"
				}
			}
			a, err := opts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if addr == "" {
				addr = a.Cfg.Addr()
			}
			return a.Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to api_host:api_port)")
	return cmd
}
