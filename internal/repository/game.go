package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	gameStatsKey = "game_stats"

	// gameStatsVersionKey is bumped on every saved game. Rebuilds of the
	// stats hash watch it.
	gameStatsVersionKey = "game_stats:version"


	defaultListLimit = 20
	maxListLimit     = 100
)

const gamesSchema = `
	CREATE TABLE IF NOT EXISTS games (
		id          UUID PRIMARY KEY,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		start       TEXT NOT NULL,
		black_depth INTEGER NOT NULL,
		white_depth INTEGER NOT NULL,
		moves       INTEGER[] NOT NULL,
		white_discs INTEGER NOT NULL,
		black_discs INTEGER NOT NULL,
		winner      TEXT NOT NULL,
		nodes       BIGINT NOT NULL,
		duration_ms DOUBLE PRECISION NOT NULL
	);
`

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrStorageDisabled = errors.New("game storage is not configured")
)

// GameRepository stores finished matches in Postgres and keeps outcome
// counters in Redis when it is available.
type GameRepository struct {
	services *services.Services
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(c *fiber.Ctx) *GameRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &GameRepository{
		services: services,
	}
}

func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{
		services: services,
	}
}

// Enabled returns whether Postgres is configured.
func (repo *GameRepository) Enabled() bool {
	return repo.services != nil && repo.services.Postgres != nil
}

func (repo *GameRepository) postgres() (*sqlx.DB, error) {
	if repo.services == nil || repo.services.Postgres == nil {
		return nil, ErrStorageDisabled
	}
	return repo.services.Postgres, nil
}

// CreateSchema creates the games table if it does not exist.
func (repo *GameRepository) CreateSchema(ctx context.Context) error {
	pgConn, err := repo.postgres()
	if err != nil {
		return err
	}

	if _, err = pgConn.ExecContext(ctx, gamesSchema); err != nil {
		return fmt.Errorf("error creating games table: %w", err)
	}

	return nil
}

// SaveGame stores a game and returns it with ID and creation time set.
func (repo *GameRepository) SaveGame(ctx context.Context, game models.GameRecord) (models.GameRecord, error) {
	pgConn, err := repo.postgres()
	if err != nil {
		return models.GameRecord{}, err
	}

	game.ID = uuid.New().String()

	query := `
		INSERT INTO games (id, start, black_depth, white_depth, moves, white_discs, black_discs, winner, nodes, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err = pgConn.QueryRowxContext(ctx, query,
		game.ID,
		game.Start,
		game.BlackDepth,
		game.WhiteDepth,
		pq.Array(game.Moves.Ints()),
		game.WhiteDiscs,
		game.BlackDiscs,
		game.Winner,
		game.Nodes,
		game.DurationMs,
	).Scan(&game.CreatedAt)
	if err != nil {
		return models.GameRecord{}, fmt.Errorf("error saving game: %w", err)
	}

	// A rebuild that read Postgres before the insert is either aborted by the
	// version bump or its result is deleted here.
	if redisConn := repo.services.Redis; redisConn != nil {
		pipe := redisConn.TxPipeline()
		pipe.Incr(ctx, gameStatsVersionKey)
		pipe.Del(ctx, gameStatsKey)
		if _, err = pipe.Exec(ctx); err != nil {
			return models.GameRecord{}, fmt.Errorf("error invalidating game stats: %w", err)
		}
	}

	return game, nil
}

// GetGame loads a game by ID.
func (repo *GameRepository) GetGame(ctx context.Context, id string) (models.GameRecord, error) {
	pgConn, err := repo.postgres()
	if err != nil {
		return models.GameRecord{}, err
	}

	if _, err = uuid.Parse(id); err != nil {
		return models.GameRecord{}, ErrGameNotFound
	}

	query := `
		SELECT id, created_at, start, black_depth, white_depth, moves, white_discs, black_discs, winner, nodes, duration_ms
		FROM games
		WHERE id = $1
	`

	var game models.GameRecord
	err = pgConn.GetContext(ctx, &game, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameRecord{}, ErrGameNotFound
	}
	if err != nil {
		return models.GameRecord{}, fmt.Errorf("error loading game: %w", err)
	}

	return game, nil
}

// ListGames returns the most recent games, newest first.
func (repo *GameRepository) ListGames(ctx context.Context, limit int) ([]models.GameRecord, error) {
	pgConn, err := repo.postgres()
	if err != nil {
		return nil, err
	}

	limit = clampListLimit(limit)

	query := `
		SELECT id, created_at, start, black_depth, white_depth, moves, white_discs, black_discs, winner, nodes, duration_ms
		FROM games
		ORDER BY created_at DESC
		LIMIT $1
	`

	games := make([]models.GameRecord, 0, limit)
	if err = pgConn.SelectContext(ctx, &games, query, limit); err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}

	return games, nil
}

// GetGameStats returns outcome counts per depth pairing. Counts are cached in
// Redis, saving a game drops the cache and the next call rebuilds it from
// Postgres.
func (repo *GameRepository) GetGameStats(ctx context.Context) ([]models.GameStats, error) {
	if repo.services == nil || repo.services.Redis == nil {
		return repo.loadGameStats(ctx)
	}

	redisConn := repo.services.Redis

	counts, err := redisConn.HGetAll(ctx, gameStatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting game stats from Redis: %w", err)
	}

	if len(counts) != 0 {
		return parseGameStats(counts)
	}

	var stats []models.GameStats

	err = redisConn.Watch(ctx, func(tx *redis.Tx) error {
		var loadErr error
		if stats, loadErr = repo.loadGameStats(ctx); loadErr != nil {
			return loadErr
		}

		if len(stats) == 0 {
			return nil
		}

		values := make(map[string]interface{}, len(stats))
		for _, stat := range stats {
			values[gameStatsField(stat.BlackDepth, stat.WhiteDepth, stat.Winner)] = stat.Count
		}

		_, execErr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, gameStatsKey)
			pipe.HSet(ctx, gameStatsKey, values)
			return nil
		})
		return execErr
	}, gameStatsVersionKey)

	// A game was saved during the rebuild. The counts are still a consistent
	// Postgres snapshot, they are just not cached.
	if errors.Is(err, redis.TxFailedErr) {
		return stats, nil
	}

	if err != nil {
		return nil, fmt.Errorf("error rebuilding game stats: %w", err)
	}

	return stats, nil
}

func (repo *GameRepository) loadGameStats(ctx context.Context) ([]models.GameStats, error) {
	pgConn, err := repo.postgres()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT black_depth, white_depth, winner, count(*) AS count
		FROM games
		GROUP BY black_depth, white_depth, winner
		ORDER BY black_depth, white_depth, winner
	`

	stats := make([]models.GameStats, 0)
	if err = pgConn.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("error loading game stats: %w", err)
	}

	return stats, nil
}

func gameStatsField(blackDepth, whiteDepth int, winner string) string {
	return fmt.Sprintf("%d:%d:%s", blackDepth, whiteDepth, winner)
}

func parseGameStats(counts map[string]string) ([]models.GameStats, error) {
	stats := make([]models.GameStats, 0, len(counts))

	for field, value := range counts {
		parts := strings.Split(field, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("error parsing game stats field: %s", field)
		}

		var stat models.GameStats
		var err error

		if stat.BlackDepth, err = strconv.Atoi(parts[0]); err != nil {
			return nil, fmt.Errorf("error parsing game stats field: %w", err)
		}

		if stat.WhiteDepth, err = strconv.Atoi(parts[1]); err != nil {
			return nil, fmt.Errorf("error parsing game stats field: %w", err)
		}

		stat.Winner = parts[2]

		if stat.Count, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("error parsing game stats value: %w", err)
		}

		stats = append(stats, stat)
	}

	models.SortGameStats(stats)
	return stats, nil
}

func clampListLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}
