package savefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const dataDir = "battleship"

// Store keeps every save slot in its own JSON file. A slot is either a
// bare name, stored under the XDG data directory, or a path to a file.
type Store struct {
	dir string
}

var _ mb.SaveStore = (*Store)(nil)

// NewStore keeps named slots under dir. An empty dir means
// $XDG_DATA_HOME/battleship.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, dataDir)
	}
	return &Store{dir: dir}
}

func (s *Store) Path(slot string) string {
	if strings.ContainsRune(slot, os.PathSeparator) || filepath.Ext(slot) == ".json" {
		return slot
	}
	return filepath.Join(s.dir, slot+".json")
}

func (s *Store) Save(ctx context.Context, slot string, snap mb.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(slot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	// The previous save stays in place until the new one is complete
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *Store) Load(ctx context.Context, slot string) (mb.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return mb.Snapshot{}, err
	}

	data, err := os.ReadFile(s.Path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return mb.Snapshot{}, cerr.ErrSaveSlotNotFound(slot)
		}
		return mb.Snapshot{}, err
	}

	var snap mb.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return mb.Snapshot{}, cerr.ErrCorruptSave(slot, fmt.Errorf("decode: %w", err))
	}
	return snap, nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (s *Store) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.Path(slot)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
