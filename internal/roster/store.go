package roster

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new PlayerStore backed by db.
func New(db *sql.DB) PlayerStore {
	s := &store{db: db}
	s.watcher = newWatcher(s, defaultPollInterval)
	return s
}

// NewWithPollInterval creates a PlayerStore whose live feed checks for
// changes at the given interval. Used by tests to tighten the loop.
func NewWithPollInterval(db *sql.DB, interval time.Duration) PlayerStore {
	s := &store{db: db}
	s.watcher = newWatcher(s, interval)
	return s
}

const playerColumns = "id, name, position, height_weight, college, birthplace, status, experience, awards, wins, losses"

func (s *store) List() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked()
}

func (s *store) listLocked() ([]Player, error) {
	rows, err := s.db.Query("SELECT " + playerColumns + " FROM players ORDER BY name")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, classifyRead("list players", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.HeightWeight, &p.College, &p.Birthplace, &p.Status, &p.Experience, &p.Awards, &p.Wins, &p.Losses); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyRead("list players", err)
	}
	return players, nil
}

func (s *store) Get(id string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	row := s.db.QueryRow("SELECT "+playerColumns+" FROM players WHERE id = ?", id)
	err := row.Scan(&p.ID, &p.Name, &p.Position, &p.HeightWeight, &p.College, &p.Birthplace, &p.Status, &p.Experience, &p.Awards, &p.Wins, &p.Losses)
	if err == sql.ErrNoRows {
		return nil, storeErr("get player", KindNotFound, fmt.Errorf("no player with id %s", id))
	}
	if err != nil {
		log.Error("Failed to query player", "error", err, "playerID", id)
		return nil, classifyRead("get player", err)
	}
	return &p, nil
}

func (s *store) Create(p Player) (*Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, classifyWrite("create player", err)
	}

	p.ID = uuid.NewString()
	now := time.Now().Unix()
	_, err = tx.Exec(`
		INSERT INTO players (id, name, position, height_weight, college, birthplace, status, experience, awards, wins, losses, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Position, p.HeightWeight, p.College, p.Birthplace, p.Status, p.Experience, p.Awards, p.Wins, p.Losses, now, now,
	)
	if err != nil {
		tx.Rollback()
		log.Error("Failed to insert player", "error", err, "name", p.Name)
		return nil, classifyWrite("create player", err)
	}
	if err := bumpVersion(tx); err != nil {
		tx.Rollback()
		return nil, classifyWrite("create player", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, classifyWrite("create player", err)
	}

	log.Info("Created player", "playerID", p.ID, "name", p.Name)
	return &p, nil
}

func (s *store) Update(id string, upd PlayerUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, args := updateClause(upd)
	if len(set) == 0 {
		return nil
	}
	set += ", updated_at = ?"
	args = append(args, time.Now().Unix(), id)

	tx, err := s.db.Begin()
	if err != nil {
		return classifyWrite("update player", err)
	}

	res, err := tx.Exec("UPDATE players SET "+set+" WHERE id = ?", args...)
	if err != nil {
		tx.Rollback()
		log.Error("Failed to update player", "error", err, "playerID", id)
		return classifyWrite("update player", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return classifyWrite("update player", err)
	}
	if affected == 0 {
		tx.Rollback()
		return storeErr("update player", KindNotFound, fmt.Errorf("no player with id %s", id))
	}
	if err := bumpVersion(tx); err != nil {
		tx.Rollback()
		return classifyWrite("update player", err)
	}
	return tx.Commit()
}

// UpdateStats is the narrow stats-only write used by the data-input flow.
func (s *store) UpdateStats(id string, wins, losses int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return classifyWrite("update stats", err)
	}

	res, err := tx.Exec("UPDATE players SET wins = ?, losses = ?, updated_at = ? WHERE id = ?", wins, losses, time.Now().Unix(), id)
	if err != nil {
		tx.Rollback()
		log.Error("Failed to update player stats", "error", err, "playerID", id)
		return classifyWrite("update stats", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return classifyWrite("update stats", err)
	}
	if affected == 0 {
		tx.Rollback()
		return storeErr("update stats", KindNotFound, fmt.Errorf("no player with id %s", id))
	}
	if err := bumpVersion(tx); err != nil {
		tx.Rollback()
		return classifyWrite("update stats", err)
	}
	if err := tx.Commit(); err != nil {
		return classifyWrite("update stats", err)
	}

	log.Info("Updated player stats", "playerID", id, "wins", wins, "losses", losses)
	return nil
}

// Delete removes the record permanently. There is no soft delete.
func (s *store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return classifyWrite("delete player", err)
	}

	res, err := tx.Exec("DELETE FROM players WHERE id = ?", id)
	if err != nil {
		tx.Rollback()
		log.Error("Failed to delete player", "error", err, "playerID", id)
		return classifyWrite("delete player", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return classifyWrite("delete player", err)
	}
	if affected == 0 {
		tx.Rollback()
		return storeErr("delete player", KindNotFound, fmt.Errorf("no player with id %s", id))
	}
	if err := bumpVersion(tx); err != nil {
		tx.Rollback()
		return classifyWrite("delete player", err)
	}
	if err := tx.Commit(); err != nil {
		return classifyWrite("delete player", err)
	}

	log.Info("Deleted player", "playerID", id)
	return nil
}

func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return classifyWrite("clear players", err)
	}
	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		tx.Rollback()
		log.Error("Failed to clear players table", "error", err)
		return classifyWrite("clear players", err)
	}
	if err := bumpVersion(tx); err != nil {
		tx.Rollback()
		return classifyWrite("clear players", err)
	}
	if err := tx.Commit(); err != nil {
		return classifyWrite("clear players", err)
	}
	log.Info("Player collection cleared")
	return nil
}

func (s *store) Subscribe(onChange func([]Player), onError func(error)) func() {
	return s.watcher.subscribe(onChange, onError)
}

func (s *store) Nudge() {
	s.watcher.nudgeFeed()
}

func (s *store) Close() {
	s.watcher.stopAll()
}

// version reads the collection change counter bumped by every write.
func (s *store) version() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var v int64
	err := s.db.QueryRow("SELECT version FROM roster_version WHERE id = 1").Scan(&v)
	if err == sql.ErrNoRows {
		return 0, storeErr("read version", KindNotInitialized, fmt.Errorf("roster_version row missing"))
	}
	if err != nil {
		return 0, classifyRead("read version", err)
	}
	return v, nil
}

func bumpVersion(tx *sql.Tx) error {
	_, err := tx.Exec("UPDATE roster_version SET version = version + 1 WHERE id = 1")
	return err
}

// updateClause builds the SET clause for a partial update from the non-nil
// fields of upd.
func updateClause(upd PlayerUpdate) (string, []any) {
	var set string
	var args []any
	add := func(col string, val any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, val)
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Position != nil {
		add("position", *upd.Position)
	}
	if upd.HeightWeight != nil {
		add("height_weight", *upd.HeightWeight)
	}
	if upd.College != nil {
		add("college", *upd.College)
	}
	if upd.Birthplace != nil {
		add("birthplace", *upd.Birthplace)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Experience != nil {
		add("experience", *upd.Experience)
	}
	if upd.Awards != nil {
		add("awards", *upd.Awards)
	}
	if upd.Wins != nil {
		add("wins", *upd.Wins)
	}
	if upd.Losses != nil {
		add("losses", *upd.Losses)
	}
	return set, args
}
