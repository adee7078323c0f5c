package manager

import (
	"fmt"
	"log"

	"hypersnake/game/score"
)

// ScoreManager keeps the high-score table in memory and writes it through
// to a store whenever a score is added.
type ScoreManager struct {
	store  score.Store
	table  *score.Table
	logger *log.Logger
}

// NewScoreManager loads the table from store. A table that cannot be read is
// treated as empty.
func NewScoreManager(store score.Store, logger *log.Logger) *ScoreManager {
	sm := &ScoreManager{
		store:  store,
		table:  score.NewTable(nil),
		logger: logger,
	}
	sm.Reload()
	return sm
}

// Reload replaces the in-memory table with the stored one.
func (sm *ScoreManager) Reload() {
	if sm.store == nil {
		return
	}
	entries, err := sm.store.Load()
	if err != nil {
		sm.logger.Printf("warn: high scores unavailable, starting empty: %v", err)
		entries = nil
	}
	sm.table.Replace(entries)
}

// Qualifies returns the rank points would take, if any.
func (sm *ScoreManager) Qualifies(points int) (int, bool) {
	return sm.table.InsertIndex(points)
}

// Submit inserts e at index and saves the table.
func (sm *ScoreManager) Submit(e score.Entry, index int) error {
	sm.table.Insert(e, index)
	if sm.store == nil {
		return nil
	}
	if err := sm.store.Save(sm.table.Entries()); err != nil {
		return fmt.Errorf("save high scores: %w", err)
	}
	return nil
}

func (sm *ScoreManager) GetHighScore() int {
	if sm.table.Len() == 0 {
		return 0
	}
	return sm.table.Entries()[0].Points
}

func (sm *ScoreManager) Entries() []score.Entry {
	return sm.table.Entries()
}
