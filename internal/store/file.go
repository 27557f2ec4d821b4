package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"NovaQuant/internal/model"
)

// FileStore persists the trading document as pretty-printed JSON. Writes go
// through a temp file and an atomic rename so a crash mid-write cannot leave
// a truncated document behind.
type FileStore struct {
	Path              string
	StartingCashCents int64
}

// NewFileStore creates a file-backed store. The file is seeded with a fresh
// document on first load.
func NewFileStore(path string, startingCashCents int64) *FileStore {
	return &FileStore{Path: path, StartingCashCents: startingCashCents}
}

// Load reads and normalizes the document. A missing file is seeded and saved
// immediately so the next load finds it.
func (f *FileStore) Load() (model.PaperTradingStore, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			seeded := Seed(f.StartingCashCents)
			if err := f.Save(seeded); err != nil {
				return model.PaperTradingStore{}, err
			}
			return seeded, nil
		}
		return model.PaperTradingStore{}, fmt.Errorf("read trading store: %w", err)
	}

	// Decode over a seeded document so absent fields keep their defaults.
	out := Seed(f.StartingCashCents)
	if err := json.Unmarshal(data, &out); err != nil {
		return model.PaperTradingStore{}, fmt.Errorf("parse trading store: %w", err)
	}
	return Normalize(out), nil
}

// Save normalizes and atomically writes the document.
func (f *FileStore) Save(s model.PaperTradingStore) error {
	buf, err := json.MarshalIndent(Normalize(s), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal trading store: %w", err)
	}

	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return fmt.Errorf("write trading store: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace trading store: %w", err)
	}
	return nil
}
