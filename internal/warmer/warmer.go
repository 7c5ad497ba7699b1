package warmer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
)

// Task is one refresh job
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Warmer keeps the memoization layer populated by calling the provider on a schedule
type Warmer struct {
	provider contracts.StatsProvider
	interval time.Duration
	logger   *logrus.Logger
	now      func() time.Time
}

// New creates a warmer; provider should be the memoizing provider
func New(provider contracts.StatsProvider, interval time.Duration, logger *logrus.Logger) *Warmer {
	return &Warmer{
		provider: provider,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Tasks returns the default refresh jobs: the player directory, the team
// directory and today's scoreboard
func (w *Warmer) Tasks() []Task {
	return []Task{
		{Name: "player_directory", Run: func(ctx context.Context) error {
			_, err := w.provider.ListAllPlayers(ctx)
			return err
		}},
		{Name: "teams", Run: func(ctx context.Context) error {
			_, err := w.provider.ListTeams(ctx)
			return err
		}},
		{Name: "scoreboard", Run: func(ctx context.Context) error {
			_, err := w.provider.GetTodaysGames(ctx, w.now())
			return err
		}},
	}
}

// Start runs every task until ctx is done; it blocks until all tasks stopped.
// A non-positive interval disables the warmer.
func (w *Warmer) Start(ctx context.Context, tasks ...Task) {
	if w.interval <= 0 {
		w.logger.Info("cache warmer disabled")
		return
	}
	if len(tasks) == 0 {
		tasks = w.Tasks()
	}

	var wg sync.WaitGroup
	w.logger.WithField("tasks", len(tasks)).Info("starting cache warmer")

	for _, task := range tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			w.run(ctx, t)
		}(task)
	}

	wg.Wait()
	w.logger.Info("cache warmer stopped")
}

// run refreshes once immediately, then every interval
func (w *Warmer) run(ctx context.Context, t Task) {
	log := w.logger.WithField("task", t.Name)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx, log, t)

	for {
		select {
		case <-ctx.Done():
			log.Debug("stopping")
			return
		case <-ticker.C:
			w.refresh(ctx, log, t)
		}
	}
}

func (w *Warmer) refresh(ctx context.Context, log *logrus.Entry, t Task) {
	start := time.Now()
	if err := t.Run(ctx); err != nil {
		if ctx.Err() == nil {
			log.WithError(err).Warn("refresh failed")
		}
		return
	}
	log.WithField("duration", time.Since(start).String()).Debug("refreshed")
}
