package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qrank/quadrant-ranking/internal/model"
)

// File name inside the data directory
const BoardFileName = "board.json"

// File permissions
const (
	boardFilePermissions = 0o644
)

// BoardFile loads and saves one board at a fixed path
type BoardFile struct {
	path string
}

// NewBoardFile creates a board file handle inside the given data directory
func NewBoardFile(dataDir string) *BoardFile {
	return &BoardFile{path: filepath.Join(dataDir, BoardFileName)}
}

// Path returns the absolute location of the board file
func (f *BoardFile) Path() string {
	return f.path
}

// Load reads the board from disk. A missing file is not an error: it returns
// the default empty board, so first launch just works. A corrupt or invalid
// file returns an error; callers fall back to an empty board and tell the user.
func (f *BoardFile) Load() (model.Board, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultBoard(), nil
		}
		return model.DefaultBoard(), fmt.Errorf("read board file: %w", err)
	}

	var board model.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return model.DefaultBoard(), fmt.Errorf("parse board file: %w", err)
	}
	if err := board.Validate(); err != nil {
		return model.DefaultBoard(), fmt.Errorf("validate board file: %w", err)
	}

	// Hand-edited files may miss item IDs or repeat them; both break ID
	// lookups later. Items without an ID are dropped, and of duplicates
	// only the first occurrence survives.
	seen := make(map[string]bool, len(board.Items))
	kept := board.Items[:0]
	for _, item := range board.Items {
		if item == nil || item.ID == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		kept = append(kept, item)
	}
	board.Items = kept

	return board, nil
}

// Save writes the board as indented JSON via a temp file + rename
func (f *BoardFile) Save(board model.Board) error {
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, boardFilePermissions); err != nil {
		return fmt.Errorf("write board file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace board file: %w", err)
	}
	return nil
}
