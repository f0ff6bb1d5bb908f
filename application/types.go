package application

import (
	"rss-announcer/services/dispatch"
	"rss-announcer/services/health"
	databases "rss-announcer/utils/databases"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler       gocron.Scheduler
	healthService   health.Service
	dispatchService dispatch.Service
	db              databases.SqlConnection
}
