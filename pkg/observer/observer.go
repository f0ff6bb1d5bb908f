package observer

import "rss-announcer/models/entities"

type EventType int

const (
	ItemAnnouncedEvent  EventType = 1
	CycleCompletedEvent EventType = 2
)

type CycleSummary struct {
	Sources   int
	Published int
	Failed    int
}

type Event struct {
	E      EventType
	Source entities.FeedSource
	Item   entities.FeedItem
	Cycle  CycleSummary
}

func NewItemAnnouncedEvent(source entities.FeedSource, item entities.FeedItem) Event {
	return Event{E: ItemAnnouncedEvent, Source: source, Item: item}
}

func NewCycleCompletedEvent(summary CycleSummary) Event {
	return Event{E: CycleCompletedEvent, Cycle: summary}
}

type Observer interface {
	OnNotify(Event)
}

type Notifier interface {
	RegisterObserver(Observer)
}
