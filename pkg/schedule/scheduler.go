package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pixelvide/pmail/pkg/mail"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Kind identifies how a job's trigger was specified.
type Kind string

const (
	KindDaily    Kind = "daily"
	KindWeekly   Kind = "weekly"
	KindInterval Kind = "interval"
	KindCron     Kind = "cron"
)

// cronParser accepts standard five-field expressions (minute precision).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Job is a registered trigger bound to a run function. Jobs live in the
// scheduler's list for the process lifetime; there is no cancellation.
type Job struct {
	ID   string
	Kind Kind
	Desc string

	schedule cron.Schedule
	next     time.Time
	run      func(ctx context.Context) error
}

// NextRun reports when the job is next due.
func (j *Job) NextRun() time.Time {
	return j.next
}

// Scheduler owns an ordered list of jobs and runs them inline from a single
// polling loop. Registration is not safe for concurrent use with Run.
type Scheduler struct {
	mailer   mail.Mailer
	jobs     []*Job
	interval time.Duration
	tracer   trace.Tracer
	now      func() time.Time
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithPollInterval sets how often the run loop checks for due jobs.
func WithPollInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = d
	}
}

// NewScheduler creates a scheduler that sends due messages through the given
// mailer. The default poll cadence is one minute.
func NewScheduler(m mail.Mailer, opts ...Option) *Scheduler {
	s := &Scheduler{
		mailer:   m,
		interval: time.Minute,
		tracer:   otel.Tracer("pmail/schedule"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Daily registers a job that sends msg every day at the given HH:MM time.
func (s *Scheduler) Daily(at string, msg *mail.Message) (*Job, error) {
	hour, min, err := parseClock(at)
	if err != nil {
		return nil, err
	}

	sched, err := cronParser.Parse(fmt.Sprintf("%d %d * * *", min, hour))
	if err != nil {
		return nil, errors.Join(ErrInvalidSchedule, err)
	}

	return s.add(KindDaily, fmt.Sprintf("daily at %s", at), sched, s.sendFunc(msg)), nil
}

// Weekly registers a job that sends msg every week on the given day at the
// given HH:MM time.
func (s *Scheduler) Weekly(day time.Weekday, at string, msg *mail.Message) (*Job, error) {
	hour, min, err := parseClock(at)
	if err != nil {
		return nil, err
	}

	sched, err := cronParser.Parse(fmt.Sprintf("%d %d * * %d", min, hour, int(day)))
	if err != nil {
		return nil, errors.Join(ErrInvalidSchedule, err)
	}

	return s.add(KindWeekly, fmt.Sprintf("weekly on %s at %s", day, at), sched, s.sendFunc(msg)), nil
}

// Every registers a job that sends msg at a fixed interval, counted from the
// end of each run.
func (s *Scheduler) Every(interval time.Duration, msg *mail.Message) (*Job, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	return s.add(KindInterval, fmt.Sprintf("every %s", interval), cron.Every(interval), s.sendFunc(msg)), nil
}

// Cron registers an arbitrary function on a five-field cron expression.
func (s *Scheduler) Cron(spec string, name string, fn func(ctx context.Context) error) (*Job, error) {
	sched, err := cronParser.Parse(spec)
	if err != nil {
		return nil, errors.Join(ErrInvalidSchedule, fmt.Errorf("%q: %w", spec, err))
	}

	return s.add(KindCron, fmt.Sprintf("%s [%s]", name, spec), sched, fn), nil
}

// Jobs returns the registered jobs in registration order.
func (s *Scheduler) Jobs() []*Job {
	return append([]*Job(nil), s.jobs...)
}

// Clear removes all registered jobs.
func (s *Scheduler) Clear() {
	n := len(s.jobs)
	s.jobs = nil
	log.Info().Int("jobs", n).Msg("Cleared all scheduled jobs")
}

// RunPending runs every due job inline, in registration order, then computes
// each ran job's next fire time from the clock after its run. A failing job is
// logged and stays scheduled; it never stops the pass.
func (s *Scheduler) RunPending(ctx context.Context) {
	if len(s.jobs) == 0 {
		log.Ctx(ctx).Debug().Msg("No scheduled jobs to run")
		return
	}

	now := s.now()
	for _, j := range s.jobs {
		if j.next.After(now) {
			continue
		}
		s.runJob(ctx, j)
		j.next = j.schedule.Next(s.now())
	}
}

// Run blocks, polling for due jobs at the configured cadence until ctx is
// cancelled. Jobs execute sequentially on the calling goroutine; a slow send
// delays the jobs behind it.
func (s *Scheduler) Run(ctx context.Context) {
	log.Ctx(ctx).Info().
		Int("jobs", len(s.jobs)).
		Dur("poll_interval", s.interval).
		Msg("Scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.RunPending(ctx)

		select {
		case <-ctx.Done():
			log.Ctx(ctx).Info().Msg("Scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, j *Job) {
	ctx, span := s.tracer.Start(ctx, "schedule.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("job.id", j.ID),
		attribute.String("job.kind", string(j.Kind)),
	)

	logger := log.Ctx(ctx).With().
		Str("job_id", j.ID).
		Str("kind", string(j.Kind)).
		Logger()

	logger.Info().Str("schedule", j.Desc).Msg("Executing job")

	if err := j.run(logger.WithContext(ctx)); err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Msg("Job failed")
	}
}

func (s *Scheduler) add(kind Kind, desc string, sched cron.Schedule, run func(ctx context.Context) error) *Job {
	j := &Job{
		ID:       uuid.NewString(),
		Kind:     kind,
		Desc:     desc,
		schedule: sched,
		next:     sched.Next(s.now()),
		run:      run,
	}
	s.jobs = append(s.jobs, j)

	log.Info().
		Str("job_id", j.ID).
		Str("kind", string(kind)).
		Str("schedule", desc).
		Time("next_run", j.next).
		Msg("Registered job")

	return j
}

func (s *Scheduler) sendFunc(msg *mail.Message) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return s.mailer.Send(ctx, msg)
	}
}

func parseClock(at string) (hour, min int, err error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return 0, 0, errors.Join(ErrInvalidTime, fmt.Errorf("%q: %w", at, err))
	}
	return t.Hour(), t.Minute(), nil
}
