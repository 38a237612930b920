package models

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/othello"
)

// SearchRequest asks for the best move in a position.
type SearchRequest struct {
	// Game is a game string as produced by othello.Game.String.
	Game  string `json:"game"`
	Depth int    `json:"depth"`
}

// Validate checks the request. A zero depth is allowed and means the
// configured default.
func (r *SearchRequest) Validate(maxDepth int) error {
	if r.Game == "" {
		return errors.New("game is empty")
	}

	if _, _, err := othello.ParsePosition(r.Game); err != nil {
		return fmt.Errorf("invalid game: %w", err)
	}

	if r.Depth < 0 || r.Depth > maxDepth {
		return fmt.Errorf("depth must be between 0 and %d, 0 selects the default", maxDepth)
	}

	return nil
}

// SearchResponse is the result of a search for Player, the side to move as
// given in the request. Move and Square are nil when Player has to pass.
//
// Cached results are shared between positions that are rotations or
// reflections of each other. When several moves share the best score, a
// cached Move can differ from the one a fresh search would pick.
type SearchResponse struct {
	Player     string  `json:"player"`
	Score      int     `json:"score"`
	Move       *string `json:"move"`
	Square     *int    `json:"square"`
	Depth      int     `json:"depth"`
	Nodes      uint64  `json:"nodes"`
	DurationMs float64 `json:"duration_ms"`
	Cached     bool    `json:"cached"`
}

// NewSearchResponse converts an engine result.
func NewSearchResponse(result engine.Result, player othello.Player, depth int, cached bool) SearchResponse {
	response := SearchResponse{
		Player:     player.String(),
		Score:      int(result.Score),
		Depth:      depth,
		Nodes:      result.Stats.Nodes,
		DurationMs: durationMs(result.Stats.Duration),
		Cached:     cached,
	}

	if result.HasMove {
		move := result.Move.String()
		square := int(result.Move)
		response.Move = &move
		response.Square = &square
	}

	return response
}

// PlayGameRequest asks the server to play a match between two engines.
type PlayGameRequest struct {
	BlackDepth int `json:"black_depth"`
	WhiteDepth int `json:"white_depth"`

	// Start is an optional game string to start from.
	Start string `json:"start"`
}

// Validate checks the request.
func (r *PlayGameRequest) Validate(maxDepth int) error {
	if r.BlackDepth < 1 || r.BlackDepth > maxDepth {
		return fmt.Errorf("black_depth must be between 1 and %d", maxDepth)
	}

	if r.WhiteDepth < 1 || r.WhiteDepth > maxDepth {
		return fmt.Errorf("white_depth must be between 1 and %d", maxDepth)
	}

	if r.Start != "" {
		if _, err := othello.ParseGame(r.Start); err != nil {
			return fmt.Errorf("invalid start: %w", err)
		}
	}

	return nil
}

// GameRecord is a stored match.
type GameRecord struct {
	ID         string    `json:"id"          db:"id"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
	Start      string    `json:"start"       db:"start"`
	BlackDepth int       `json:"black_depth" db:"black_depth"`
	WhiteDepth int       `json:"white_depth" db:"white_depth"`
	Moves      Moves     `json:"moves"       db:"moves"`
	WhiteDiscs int       `json:"white_discs" db:"white_discs"`
	BlackDiscs int       `json:"black_discs" db:"black_discs"`
	Winner     string    `json:"winner"      db:"winner"`
	Nodes      int64     `json:"nodes"       db:"nodes"`
	DurationMs float64   `json:"duration_ms" db:"duration_ms"`
}

// NewGameRecord converts a match record. ID and CreatedAt are set on storage.
func NewGameRecord(record *match.Record) GameRecord {
	return GameRecord{
		Start:      record.Start,
		BlackDepth: record.BlackDepth,
		WhiteDepth: record.WhiteDepth,
		Moves:      Moves(record.Moves()),
		WhiteDiscs: record.WhiteDiscs,
		BlackDiscs: record.BlackDiscs,
		Winner:     record.Outcome(),
		Nodes:      int64(record.Stats.Nodes), //nolint:gosec
		DurationMs: durationMs(record.Stats.Duration),
	}
}

type VersionResponse struct {
	Commit string `json:"commit"`
}

func durationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / float64(time.Millisecond)
}

// GameStats counts the outcomes of stored games per depth pairing.
type GameStats struct {
	BlackDepth int    `json:"black_depth" db:"black_depth"`
	WhiteDepth int    `json:"white_depth" db:"white_depth"`
	Winner     string `json:"winner"      db:"winner"`
	Count      int    `json:"count"       db:"count"`
}

// SortGameStats orders stats by black depth, white depth and winner.
func SortGameStats(stats []GameStats) {
	sort.Slice(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.BlackDepth != b.BlackDepth {
			return a.BlackDepth < b.BlackDepth
		}
		if a.WhiteDepth != b.WhiteDepth {
			return a.WhiteDepth < b.WhiteDepth
		}
		return a.Winner < b.Winner
	})
}
