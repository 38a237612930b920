package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "search"

// SearchRepository caches finished top-level searches in Redis. Boards are
// normalized, so all symmetric variants of a position share one entry.
type SearchRepository struct {
	redis *redis.Client
	ttl   time.Duration
}

// cachedSearch is the stored form of a search result. Move is in the
// normalized frame, or -1 for a pass.
type cachedSearch struct {
	Score      int8   `json:"score"`
	Move       int    `json:"move"`
	Nodes      uint64 `json:"nodes"`
	DurationNs int64  `json:"duration_ns"`
}

// NewSearchRepository creates a SearchRepository. services.Redis must be set.
func NewSearchRepository(services *services.Services, ttl time.Duration) *SearchRepository {
	return &SearchRepository{
		redis: services.Redis,
		ttl:   ttl,
	}
}

// searchKey returns the cache key and the rotation that normalized the board.
func searchKey(board othello.Board, player othello.Player, depth int) (string, int) {
	normalized, rotation := board.Normalize()
	return fmt.Sprintf("%s:%d:%s:%s", searchKeyPrefix, depth, player, normalized), rotation
}

// Lookup returns a cached result. The boolean is false on a cache miss.
func (repo *SearchRepository) Lookup(
	ctx context.Context,
	board othello.Board,
	player othello.Player,
	depth int,
) (engine.Result, bool, error) {
	key, rotation := searchKey(board, player, depth)

	data, err := repo.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return engine.Result{}, false, nil
	}
	if err != nil {
		return engine.Result{}, false, fmt.Errorf("error getting search result: %w", err)
	}

	var cached cachedSearch
	if err = json.Unmarshal(data, &cached); err != nil {
		return engine.Result{}, false, fmt.Errorf("error unmarshaling search result: %w", err)
	}

	result := engine.Result{
		Score: cached.Score,
		Move:  othello.PassMove,
		Stats: engine.Stats{
			Nodes:    cached.Nodes,
			Duration: time.Duration(cached.DurationNs),
		},
	}

	if move := othello.Square(cached.Move); move.IsValid() {
		result.Move = move.Unrotate(rotation)
		result.HasMove = true
	}

	return result, true, nil
}

// Store saves a search result with the configured TTL.
func (repo *SearchRepository) Store(
	ctx context.Context,
	board othello.Board,
	player othello.Player,
	depth int,
	result engine.Result,
) error {
	key, rotation := searchKey(board, player, depth)

	cached := cachedSearch{
		Score:      result.Score,
		Move:       int(othello.PassMove),
		Nodes:      result.Stats.Nodes,
		DurationNs: result.Stats.Duration.Nanoseconds(),
	}

	if result.HasMove {
		cached.Move = int(result.Move.Rotate(rotation))
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("error marshaling search result: %w", err)
	}

	if err = repo.redis.Set(ctx, key, data, repo.ttl).Err(); err != nil {
		return fmt.Errorf("error storing search result: %w", err)
	}

	return nil
}
