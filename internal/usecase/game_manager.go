package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/presenter"
)

type gameRepo interface {
	Save(ctx context.Context, id string, record history.Record) error
	GetByID(ctx context.Context, id string) (history.Record, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - hosts one history store per game session. Every call runs to completion
// before the next one starts.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	mu    sync.Mutex
	newID func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	gameID := that.newID()
	store := history.New()

	if err := that.gameRepo.Save(ctx, gameID, store.Record()); err != nil {
		return entity.GameView{}, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", gameID)

	return presenter.NewGameView(gameID, store), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	store, err := that.load(ctx, id)
	if err != nil {
		return entity.GameView{}, err
	}

	return presenter.NewGameView(id, store), nil
}

// MakeMove - plays cell in the game. A rejected move is not an error: the view reports accepted=false.
func (that *GameManager) MakeMove(ctx context.Context, id string, cell int) (entity.GameView, error) {
	log := that.logger.With("method", "MakeMove", "gameID", id, "cell", cell)

	return that.update(ctx, id, func(store *history.Store) bool {
		accepted := store.ApplyMove(cell)
		if !accepted {
			log.Debug("move ignored")
		}

		return accepted
	})
}

func (that *GameManager) JumpTo(ctx context.Context, id string, step int) (entity.GameView, error) {
	log := that.logger.With("method", "JumpTo", "gameID", id)

	return that.update(ctx, id, func(store *history.Store) bool {
		if clamped := store.JumpTo(step); clamped != step {
			log.Debug("step clamped", "requested", step, "step", clamped)
		}

		return true
	})
}

func (that *GameManager) ToggleMoveOrder(ctx context.Context, id string) (entity.GameView, error) {
	return that.update(ctx, id, func(store *history.Store) bool {
		store.ToggleMoveOrder()

		return true
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) update(ctx context.Context, id string, apply func(store *history.Store) bool) (entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	store, err := that.load(ctx, id)
	if err != nil {
		return entity.GameView{}, err
	}

	accepted := apply(store)
	if accepted {
		if err = that.gameRepo.Save(ctx, id, store.Record()); err != nil {
			return entity.GameView{}, fmt.Errorf("failed to update game: %w", err)
		}
	}

	view := presenter.NewGameView(id, store)
	view.Accepted = &accepted

	return view, nil
}

func (that *GameManager) load(ctx context.Context, id string) (*history.Store, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidGameID, id)
	}

	record, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	store, err := history.Restore(record)
	if err != nil {
		that.logger.Error("stored game is corrupt", "gameID", id, "error", err)
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	return store, nil
}
