// Package jsonl persists records as JSON Lines files.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.HistoryStore = (*HistoryStore)(nil)

// maxLineSize bounds a single record; entries carry both compared texts.
const maxLineSize = 16 * 1024 * 1024

// HistoryStore keeps recent comparisons in a JSONL file, one entry per line,
// newest first.
type HistoryStore struct{}

// NewHistoryStore creates a new HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Load reads entries from path. A missing file yields no entries.
func (s *HistoryStore) Load(path string) ([]linediff.HistoryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []linediff.HistoryEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var e linediff.HistoryEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNum, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Save replaces the file at path with entries. The file is written next to
// its destination and renamed into place, so readers never see a partial
// history. Parent directories are created as needed.
func (s *HistoryStore) Save(path string, entries []linediff.HistoryEntry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			tmp.Close()
			return fmt.Errorf("encode entry %s: %w", e.ID, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
