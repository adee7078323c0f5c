// Package score holds the top-ten table, three-letter name entry, and the
// stores that persist the table between runs.
package score

import "hypersnake/game/types"

// Entry is one row of the high-score table.
type Entry struct {
	Name    string `json:"name"`
	Points  int    `json:"points"`
	Session string `json:"session,omitempty"` // round that set the score, when known
}

// Table is the ordered top-ten list, highest first.
type Table struct {
	entries []Entry
}

// NewTable builds a table from rows already in rank order, keeping at most ten.
func NewTable(entries []Entry) *Table {
	t := &Table{}
	t.Replace(entries)
	return t
}

// Replace swaps in a new list of rows.
func (t *Table) Replace(entries []Entry) {
	if len(entries) > types.MaxHighScores {
		entries = entries[:types.MaxHighScores]
	}
	t.entries = append(t.entries[:0], entries...)
}

// InsertIndex returns the rank a score of points would take. Ties go above
// the existing entry. ok is false when the score does not make the table.
func (t *Table) InsertIndex(points int) (index int, ok bool) {
	for i, e := range t.entries {
		if points >= e.Points {
			return i, true
		}
	}
	if len(t.entries) < types.MaxHighScores {
		return len(t.entries), true
	}
	return 0, false
}

// Insert places a new row at index, shifting lower rows down and dropping
// whatever falls off the end.
func (t *Table) Insert(e Entry, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(t.entries) {
		index = len(t.entries)
	}
	t.entries = append(t.entries, Entry{})
	copy(t.entries[index+1:], t.entries[index:])
	t.entries[index] = e
	if len(t.entries) > types.MaxHighScores {
		t.entries = t.entries[:types.MaxHighScores]
	}
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the rows, highest first.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
