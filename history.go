package linediff

import (
	"strings"
	"time"
)

// DefaultMaxHistory is the default number of recent comparisons kept.
const DefaultMaxHistory = 60

// HistoryEntry records one past comparison.
type HistoryEntry struct {
	ID         string    `json:"id"`
	LeftLabel  string    `json:"leftLabel,omitempty"`
	RightLabel string    `json:"rightLabel,omitempty"`
	Left       string    `json:"left"`
	Right      string    `json:"right"`
	Options    Options   `json:"options"`
	Similarity int       `json:"similarity"`
	Timestamp  time.Time `json:"timestamp"`
}

// sameInput reports whether two entries describe the same comparison.
func (e HistoryEntry) sameInput(other HistoryEntry) bool {
	return e.Left == other.Left &&
		e.Right == other.Right &&
		e.LeftLabel == other.LeftLabel &&
		e.RightLabel == other.RightLabel &&
		e.Options == other.Options
}

// HistoryStore persists recent comparisons.
type HistoryStore interface {
	// Load returns the stored entries, newest first. A missing store is empty.
	Load(path string) ([]HistoryEntry, error)
	// Save replaces the stored entries.
	Save(path string, entries []HistoryEntry) error
}

// AddRecent returns entries with e prepended. An older entry for the same
// comparison is dropped and the result is capped at max entries. Entries whose
// texts are both blank are not recorded.
func AddRecent(entries []HistoryEntry, e HistoryEntry, max int) []HistoryEntry {
	if strings.TrimSpace(e.Left) == "" && strings.TrimSpace(e.Right) == "" {
		return entries
	}
	if max <= 0 {
		max = DefaultMaxHistory
	}

	out := make([]HistoryEntry, 0, min(len(entries)+1, max))
	out = append(out, e)
	for _, existing := range entries {
		if len(out) == max {
			break
		}
		if existing.sameInput(e) {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// RemoveRecent returns entries without the entry with the given ID.
func RemoveRecent(entries []HistoryEntry, id string) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
