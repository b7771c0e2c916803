package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub. Topics
// carry the same names.
type EventType string

const (
	// EventRosterChanged tells peer instances the player collection moved
	// so their live feeds can re-check without waiting a poll interval.
	EventRosterChanged EventType = "roster-changed"
	// EventStatsRecorded announces a committed game outcome.
	EventStatsRecorded EventType = "stats-recorded"
)

// RosterChangedEvent is the payload for EventRosterChanged.
type RosterChangedEvent struct {
	Origin string `msgpack:"origin"`
}

// StatsRecordedEvent is the payload for EventStatsRecorded.
type StatsRecordedEvent struct {
	PlayerID   string `msgpack:"player_id"`
	PlayerName string `msgpack:"player_name"`
	Wins       int    `msgpack:"wins"`
	Losses     int    `msgpack:"losses"`
	RecordedBy string `msgpack:"recorded_by"`
}
