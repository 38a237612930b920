package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
)

// Cache stores finished searches across requests.
type Cache interface {
	Lookup(ctx context.Context, board othello.Board, player othello.Player, depth int) (engine.Result, bool, error)
	Store(ctx context.Context, board othello.Board, player othello.Player, depth int, result engine.Result) error
}

// Service runs searches for the HTTP and websocket handlers.
type Service struct {
	cfg   config.SearchConfig
	cache Cache
}

// NewService creates a Service. A nil cache disables caching.
func NewService(cfg config.SearchConfig, cache Cache) *Service {
	return &Service{
		cfg:   cfg,
		cache: cache,
	}
}

// RequestError is returned for requests that fail validation.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// position is a board with the side to move as requested. Unlike othello.Game
// it does not hand the turn to the opponent when that side has to pass.
type position struct {
	board  othello.Board
	player othello.Player
}

func (p position) Board() othello.Board {
	return p.board
}

func (p position) CurrentPlayer() othello.Player {
	return p.player
}

// Search validates the request and returns the best move for the side to
// move in the request. If that side has to pass, the response has no move and
// the caller plays the pass. Cache failures are logged and otherwise ignored.
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error) {
	if err := req.Validate(s.cfg.MaxDepth); err != nil {
		return models.SearchResponse{}, &RequestError{Err: err}
	}

	board, player, err := othello.ParsePosition(req.Game)
	if err != nil {
		return models.SearchResponse{}, &RequestError{Err: err}
	}

	depth := req.Depth
	if depth == 0 {
		depth = s.cfg.DefaultDepth
	}

	if s.cache != nil {
		result, ok, err := s.cache.Lookup(ctx, board, player, depth)
		if err != nil {
			slog.Error("search cache lookup failed", "error", err)
		} else if ok {
			return models.NewSearchResponse(result, player, depth, true), nil
		}
	}

	e, err := engine.New(depth)
	if err != nil {
		return models.SearchResponse{}, &RequestError{Err: fmt.Errorf("invalid depth: %w", err)}
	}

	result := e.Search(position{board: board, player: player})

	if s.cache != nil {
		if err = s.cache.Store(ctx, board, player, depth, result); err != nil {
			slog.Error("search cache store failed", "error", err)
		}
	}

	return models.NewSearchResponse(result, player, depth, false), nil
}

// NewServiceFromServices creates a Service that caches in Redis when it is
// configured.
func NewServiceFromServices(cfg config.SearchConfig, services *services.Services) *Service {
	if services == nil || services.Redis == nil {
		return NewService(cfg, nil)
	}

	return NewService(cfg, repository.NewSearchRepository(services, cfg.CacheTTL))
}
