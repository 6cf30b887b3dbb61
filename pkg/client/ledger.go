package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names mirror the localStorage keys the web front end uses for the
// same state, so the two representations stay recognizable side by side.
const (
	marksFile = "user-votes.json"
	savedFile = "saved-prompts.json"
)

// Ledger persists the per-user local state as JSON files in a directory.
// A missing file reads as empty state; a file that exists but does not parse
// is surfaced as an error so the caller can decide to start fresh.
type Ledger struct {
	dir string
}

func NewLedger(dir string) *Ledger {
	return &Ledger{dir: dir}
}

func (l *Ledger) LoadMarks() (map[string]Mark, error) {
	marks := map[string]Mark{}
	if err := l.load(marksFile, &marks); err != nil {
		return nil, err
	}
	return marks, nil
}

func (l *Ledger) SaveMarks(marks map[string]Mark) error {
	return l.save(marksFile, marks)
}

func (l *Ledger) LoadSaved() ([]string, error) {
	saved := []string{}
	if err := l.load(savedFile, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (l *Ledger) SaveSaved(ids []string) error {
	return l.save(savedFile, ids)
}

func (l *Ledger) load(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ledger: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("ledger: parse %s: %w", name, err)
	}
	return nil
}

func (l *Ledger) save(name string, state interface{}) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("ledger: encode %s: %w", name, err)
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("ledger: write %s: %w", name, err)
	}
	return nil
}
