package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/render"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/service"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/warmer"
)

func newReportCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "report <player name>",
		Short: "Season report for one player",
		Long: `Builds the season report of a player: per-game averages, the trend
against the career averages, the playing style and the awards.

The name must match the full player name (case-insensitive). Words may be
passed unquoted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := st.app.service.Report(cmd.Context(), service.Request{
				Name:   strings.Join(args, " "),
				Season: st.flags.season,
				Locale: st.flags.locale,
			})
			if err != nil {
				return err
			}
			if err := render.Report(cmd.OutOrStdout(), st.format, bundle); err != nil {
				return err
			}
			if bundle.Report.Failed() {
				return errReportFailed
			}
			return nil
		},
	}
}

func newPlayersCmd(st *state) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "players",
		Short: "List players, or the active roster of one team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := st.app.service.Players(cmd.Context(), team)
			if err != nil {
				return err
			}
			return render.Players(cmd.OutOrStdout(), st.format, players)
		},
	}
	cmd.Flags().StringVarP(&team, "team", "t", "", "Team abbreviation, e.g. LAL")
	return cmd
}

func newTeamsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List the 30 franchises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := st.app.service.Teams(cmd.Context(), st.flags.locale)
			if err != nil {
				return err
			}
			return render.Teams(cmd.OutOrStdout(), st.format, teams)
		},
	}
}

func newScoreboardCmd(st *state) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "scoreboard",
		Short: "Games and scores of one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("--date %q: expected YYYY-MM-DD", date)
				}
				day = parsed
			}

			board, err := st.app.service.Scoreboard(cmd.Context(), day)
			if err != nil {
				return err
			}
			return render.Scoreboard(cmd.OutOrStdout(), st.format, board)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day YYYY-MM-DD (default: today)")
	return cmd
}

func newServeCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serves the reports over HTTP on SERVER_ADDR:

  GET /health
  GET /api/v1/players/report?name=&season=&locale=&format=
  GET /api/v1/players?team=
  GET /api/v1/teams?locale=
  GET /api/v1/scoreboard?date=

With REDIS_URL set, a cache warmer refreshes the directory and the
scoreboard every WARM_INTERVAL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), st.app)
		},
	}
}

// serve runs the API until SIGINT/SIGTERM, then shuts down gracefully
func serve(parent context.Context, a *app) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	handler := handlers.NewHandler(a.service, a.ping(), a.logger)
	server := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      handlers.NewRouter(handler, a.cfg.Server.CORSOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
	}

	warmerDone := make(chan struct{})
	if a.redis != nil {
		go func() {
			defer close(warmerDone)
			warmer.New(a.provider, a.cfg.Redis.WarmInterval, a.logger).Start(ctx)
		}()
	} else {
		close(warmerDone)
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.WithField("addr", server.Addr).Info("player report service started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			cancel()
			<-warmerDone
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		a.logger.Info("received shutdown signal")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	cancel()
	<-warmerDone

	a.logger.Info("player report service stopped")
	return nil
}
