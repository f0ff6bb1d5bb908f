package health

import (
	"rss-announcer/pkg/observer"
	"sync"
	"time"
)

type Service interface {
	observer.Observer
	Status() Status
}

type Status struct {
	StartedAt     time.Time
	LastCycleAt   time.Time
	LastCycle     observer.CycleSummary
	Cycles        int
	Announcements int
}

type Impl struct {
	mu     sync.Mutex
	status Status
	now    func() time.Time
}
