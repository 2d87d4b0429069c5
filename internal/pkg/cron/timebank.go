package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/timebank"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/clock"
)

// TimebankJobs holds the background work of the compensatory-hours ledger.
type TimebankJobs struct {
	timebankService timebank.TimebankService
	clock           clock.Clock
	sweepPeriod     time.Duration
}

func NewTimebankJobs(timebankService timebank.TimebankService, clk clock.Clock, sweepPeriod time.Duration) *TimebankJobs {
	return &TimebankJobs{
		timebankService: timebankService,
		clock:           clk,
		sweepPeriod:     sweepPeriod,
	}
}

func (j *TimebankJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("timebank_expiration_sweep", j.sweepPeriod, j.SweepExpirations)
}

// SweepExpirations settles every banked credit whose expiry date has passed.
func (j *TimebankJobs) SweepExpirations(ctx context.Context) error {
	asOf := clock.Today(j.clock)

	expired, err := j.timebankService.ProcessExpirations(ctx, asOf)
	if err != nil {
		return err
	}

	if len(expired) > 0 {
		total := 0
		for _, e := range expired {
			total += e.ExpiredMinutes
		}
		slog.Info("Cron: expired timebank credits settled",
			"entries", len(expired),
			"total_minutes", total,
		)
	}

	return nil
}
