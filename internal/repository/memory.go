package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
)

type memoryGame struct {
	mu    sync.RWMutex
	games map[string]history.Record
}

func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]history.Record),
	}
}

func (that *memoryGame) Save(_ context.Context, id string, record history.Record) error {
	record.Moves = slices.Clone(record.Moves)

	that.mu.Lock()
	that.games[id] = record
	that.mu.Unlock()

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (history.Record, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	record, ok := that.games[id]
	if !ok {
		return history.Record{}, apperror.ErrGameNotFound
	}

	record.Moves = slices.Clone(record.Moves)

	return record, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

func (that *memoryGame) Reset(_ context.Context) error {
	that.mu.Lock()
	clear(that.games)
	that.mu.Unlock()

	return nil
}
