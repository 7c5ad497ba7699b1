// Package cli contains all commands of the nba-report tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/config"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/logging"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/render"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
)

// Version is the current version of nba-report
var Version = "0.1.0"

// errReportFailed signals a report that carries an error; the report itself was already printed
var errReportFailed = errors.New("report failed")

// Options injects collaborators, mainly for tests
type Options struct {
	Provider contracts.StatsProvider // replaces the stats.nba.com client
	Out      io.Writer
	Err      io.Writer
}

// globalFlags are the persistent flags of the root command
type globalFlags struct {
	season string
	locale string
	format string
}

// state is built once per invocation by the root PersistentPreRunE
type state struct {
	opts   Options
	flags  globalFlags
	app    *app
	format render.Format
}

// NewRootCmd builds the command tree
func NewRootCmd(opts Options) *cobra.Command {
	st := &state{opts: opts}

	root := &cobra.Command{
		Use:   "nba-report",
		Short: "NBA player season reports from stats.nba.com",
		Long: `nba-report derives a per-game season report for an NBA player:
averages, the trend against the career, a playing style and the award list.

Configuration comes from the environment (REDIS_URL, DEFAULT_SEASON,
REPORT_LOCALE, LOG_LEVEL, ...). Flags override it per invocation.

Examples:
  nba-report report LeBron James                 # Current default season
  nba-report report "Stephen Curry" -s 2015-16   # A given season
  nba-report report Luka Doncic --locale zh-TW   # Localized labels
  nba-report players --team LAL                  # Active roster
  nba-report scoreboard --date 2024-01-15        # Games of a day
  nba-report serve                               # HTTP API`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if st.app != nil {
				return st.app.Close()
			}
			return nil
		},
	}

	if opts.Out != nil {
		root.SetOut(opts.Out)
	}
	if opts.Err != nil {
		root.SetErr(opts.Err)
	}

	root.PersistentFlags().StringVarP(&st.flags.season, "season", "s", "", "Season label YYYY-YY (default: DEFAULT_SEASON)")
	root.PersistentFlags().StringVarP(&st.flags.locale, "locale", "l", "", "Display locale en|zh-TW (default: REPORT_LOCALE)")
	root.PersistentFlags().StringVarP(&st.flags.format, "format", "f", "text", "Output format (text|markdown|json|yaml)")

	root.AddCommand(
		newReportCmd(st),
		newPlayersCmd(st),
		newTeamsCmd(st),
		newScoreboardCmd(st),
		newServeCmd(st),
	)
	return root
}

// init loads configuration and wires the app
func (st *state) init(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := applyDefaults(cmd.Flags(), map[string]string{
		"season": cfg.Report.DefaultSeason,
		"locale": cfg.Report.Locale,
	}); err != nil {
		return err
	}

	st.format, err = render.ParseFormat(st.flags.format)
	if err != nil {
		return err
	}

	logger, err := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	st.app = newApp(cmd.Context(), cfg, logger, st.opts.Provider)
	return nil
}

// applyDefaults sets every flag the user did not pass to its configured value
func applyDefaults(fs *pflag.FlagSet, defaults map[string]string) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		value, ok := defaults[f.Name]
		if !ok || f.Changed || err != nil {
			return
		}
		err = f.Value.Set(value)
	})
	return err
}

// Execute runs the command line and exits non-zero on failure
func Execute() {
	if err := NewRootCmd(Options{}).Execute(); err != nil {
		if !errors.Is(err, errReportFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
