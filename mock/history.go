package mock

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of linediff.HistoryStore.
type HistoryStore struct {
	LoadFn func(path string) ([]linediff.HistoryEntry, error)
	SaveFn func(path string, entries []linediff.HistoryEntry) error
}

func (s *HistoryStore) Load(path string) ([]linediff.HistoryEntry, error) {
	return s.LoadFn(path)
}

func (s *HistoryStore) Save(path string, entries []linediff.HistoryEntry) error {
	return s.SaveFn(path, entries)
}
