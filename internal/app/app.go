package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"magazine-catalog/internal/domain/ports"
)

// Job is a unit of work the scheduler runs.
type Job interface {
	Run(ctx context.Context) error
}

// App manages the lifecycle of the publishing report scheduler.
type App struct {
	cron       *cron.Cron
	job        Job
	logger     ports.Logger
	schedule   string
	runOnce    bool
	jobTimeout time.Duration
}

// Options controls how the App runs its job.
type Options struct {
	Schedule   string
	RunOnce    bool
	JobTimeout time.Duration
}

// New constructs an App instance.
func New(job Job, logger ports.Logger, opts Options) *App {
	timeout := opts.JobTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &App{
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		job:        job,
		logger:     logger,
		schedule:   opts.Schedule,
		runOnce:    opts.RunOnce,
		jobTimeout: timeout,
	}
}

// Run executes the job once immediately and then according to the cron schedule,
// until ctx is done. In run-once mode it returns the first run's error instead.
func (a *App) Run(ctx context.Context) error {
	if a.runOnce {
		return a.runJob(ctx, "single")
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first report immediately")
	if err := a.runJob(ctx, "initial"); err != nil {
		a.logger.Error(ctx, "initial report run failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) runJob(parent context.Context, trigger string) error {
	ctx, cancel := context.WithTimeout(parent, a.jobTimeout)
	defer cancel()
	a.logger.Debug(ctx, "report run triggered", "trigger", trigger)
	return a.job.Run(ctx)
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		if err := a.runJob(context.Background(), "scheduled"); err != nil {
			a.logger.Error(context.Background(), "scheduled report run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	return nil
}
