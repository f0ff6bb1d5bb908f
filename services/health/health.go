package health

import (
	"rss-announcer/pkg/observer"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

func New(scheduler gocron.Scheduler, cronTab string) (*Impl, error) {
	service := &Impl{now: time.Now}
	service.status.StartedAt = service.now()

	_, errJob := scheduler.NewJob(
		gocron.CronJob(cronTab, false),
		gocron.NewTask(func() { service.echo() }),
		gocron.WithName("Check app running"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

func (service *Impl) OnNotify(e observer.Event) {
	service.mu.Lock()
	defer service.mu.Unlock()

	switch e.E {
	case observer.ItemAnnouncedEvent:
		service.status.Announcements++
	case observer.CycleCompletedEvent:
		service.status.Cycles++
		service.status.LastCycle = e.Cycle
		service.status.LastCycleAt = service.now()
	}
}

func (service *Impl) Status() Status {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.status
}

func (service *Impl) echo() {
	status := service.Status()

	lastCycle := "never"
	if !status.LastCycleAt.IsZero() {
		lastCycle = humanize.Time(status.LastCycleAt)
	}

	log.Info().
		Str("startedAt", humanize.Time(status.StartedAt)).
		Str("lastCycle", lastCycle).
		Int("cycles", status.Cycles).
		Int("announcements", status.Announcements).
		Int("lastCycleFailures", status.LastCycle.Failed).
		Msgf("Announcer is running")
}
