package roster

import (
	"database/sql"
	"sync"
)

// Position is a player's on-court position.
type Position string

const (
	PositionGuard   Position = "Guard"
	PositionForward Position = "Forward"
	PositionCenter  Position = "Center"
)

// Status is a player's availability status. Inactive players are excluded
// from the standings.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusInjured  Status = "Injured"
)

// Player is a single roster record. ID is assigned by the store on create
// and is stable for the record's lifetime. Name is display-only; two
// players may share a name.
type Player struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Position     Position `json:"position"`
	HeightWeight string   `json:"heightWeight"`
	College      string   `json:"college"`
	Birthplace   string   `json:"birthplace"`
	Status       Status   `json:"status"`
	Experience   string   `json:"experience"`
	Awards       string   `json:"awards"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
}

// PlayerUpdate is a partial update; nil fields are left untouched.
type PlayerUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Position     *Position `json:"position,omitempty"`
	HeightWeight *string   `json:"heightWeight,omitempty"`
	College      *string   `json:"college,omitempty"`
	Birthplace   *string   `json:"birthplace,omitempty"`
	Status       *Status   `json:"status,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	Awards       *string   `json:"awards,omitempty"`
	Wins         *int      `json:"wins,omitempty"`
	Losses       *int      `json:"losses,omitempty"`
}

// StatLine is the ephemeral session draft a user composes on the data-input
// page before committing it as a stats write. It is never persisted.
type StatLine struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// store handles all database operations for the player collection.
type store struct {
	db      *sql.DB
	mu      sync.RWMutex
	watcher *watcher
}
