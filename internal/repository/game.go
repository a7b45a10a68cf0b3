package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
)

const (
	gameKeyPrefix = "game:"
	scanBatchSize = 100
)

type GameRepository interface {
	Save(ctx context.Context, id string, record history.Record) error
	GetByID(ctx context.Context, id string) (history.Record, error)
	DeleteByID(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - stores game records in Redis. Keys expire after ttl, zero keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) Save(ctx context.Context, id string, record history.Record) error {
	gameJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKeyPrefix+id, gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (history.Record, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return history.Record{}, apperror.ErrGameNotFound
	}

	if err != nil {
		return history.Record{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var record history.Record
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return history.Record{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return record, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

// Reset - removes every stored game.
func (that *dbGame) Reset(ctx context.Context) error {
	iter := that.client.Scan(ctx, 0, gameKeyPrefix+"*", scanBatchSize).Iterator()

	for iter.Next(ctx) {
		if err := that.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan games: %w", err)
	}

	return nil
}
