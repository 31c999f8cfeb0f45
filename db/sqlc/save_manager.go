package sqlc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

// SaveManager keeps snapshots in the saved_games table, one row per slot.
type SaveManager struct {
	queries Querier
}

var _ mb.SaveStore = (*SaveManager)(nil)

func NewSaveManager(queries Querier) *SaveManager {
	return &SaveManager{queries: queries}
}

func (s *SaveManager) Save(ctx context.Context, slot string, snap mb.Snapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return s.queries.UpsertSavedGame(ctx, UpsertSavedGameParams{
		ID:           uuid.New(),
		Slot:         slot,
		Round:        int32(snap.Round),
		MaxRounds:    int32(snap.MaxRounds),
		PlayerKind:   string(snap.PlayerKind),
		OpponentKind: string(snap.OpponentKind),
		State:        pqtype.NullRawMessage{RawMessage: state, Valid: true},
		SavedAt:      snap.SavedAt,
	})
}

func (s *SaveManager) Load(ctx context.Context, slot string) (mb.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	row, err := s.queries.GetSavedGame(ctx, slot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mb.Snapshot{}, cerr.ErrSaveSlotNotFound(slot)
		}
		return mb.Snapshot{}, err
	}

	if !row.State.Valid {
		return mb.Snapshot{}, cerr.ErrCorruptSave(slot, errors.New("state is null"))
	}

	var snap mb.Snapshot
	if err := json.Unmarshal(row.State.RawMessage, &snap); err != nil {
		return mb.Snapshot{}, cerr.ErrCorruptSave(slot, fmt.Errorf("decode state: %w", err))
	}
	if int32(snap.Round) != row.Round || int32(snap.MaxRounds) != row.MaxRounds {
		return mb.Snapshot{}, cerr.ErrCorruptSave(slot, fmt.Errorf("state round %d/%d does not match row round %d/%d", snap.Round, snap.MaxRounds, row.Round, row.MaxRounds))
	}
	return snap, nil
}

func (s *SaveManager) Delete(ctx context.Context, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return s.queries.DeleteSavedGame(ctx, slot)
}
