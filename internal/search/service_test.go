package search

import (
	"context"
	"errors"
	"testing"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

const startGame = "00000010080000000000000810000000-b"

var testConfig = config.SearchConfig{
	DefaultDepth: 1,
	MaxDepth:     4,
}

type cacheKey struct {
	board  othello.Board
	player othello.Player
	depth  int
}

type fakeCache struct {
	results   map[cacheKey]engine.Result
	lookupErr error
	storeErr  error
	lookups   int
	stores    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{results: make(map[cacheKey]engine.Result)}
}

func (c *fakeCache) Lookup(
	_ context.Context,
	board othello.Board,
	player othello.Player,
	depth int,
) (engine.Result, bool, error) {
	c.lookups++

	if c.lookupErr != nil {
		return engine.Result{}, false, c.lookupErr
	}

	result, ok := c.results[cacheKey{board, player, depth}]
	return result, ok, nil
}

func (c *fakeCache) Store(
	_ context.Context,
	board othello.Board,
	player othello.Player,
	depth int,
	result engine.Result,
) error {
	c.stores++

	if c.storeErr != nil {
		return c.storeErr
	}

	c.results[cacheKey{board, player, depth}] = result
	return nil
}

func TestService_Search(t *testing.T) {
	service := NewService(testConfig, nil)

	response, err := service.Search(context.Background(), models.SearchRequest{Game: startGame})
	require.NoError(t, err)

	require.Equal(t, "black", response.Player)
	require.Equal(t, -3, response.Score)
	require.NotNil(t, response.Move)
	require.Equal(t, "d3", *response.Move)
	require.Equal(t, 1, response.Depth)
	require.Equal(t, uint64(4), response.Nodes)
	require.False(t, response.Cached)
}

func TestService_SearchInvalidRequest(t *testing.T) {
	service := NewService(testConfig, nil)

	tests := []struct {
		name    string
		request models.SearchRequest
	}{
		{name: "empty game", request: models.SearchRequest{}},
		{name: "invalid game", request: models.SearchRequest{Game: "abc"}},
		{name: "depth too high", request: models.SearchRequest{Game: startGame, Depth: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Search(context.Background(), tt.request)

			var requestErr *RequestError
			require.ErrorAs(t, err, &requestErr)
		})
	}
}

func TestService_SearchCached(t *testing.T) {
	cache := newFakeCache()
	service := NewService(testConfig, cache)

	request := models.SearchRequest{Game: startGame, Depth: 2}

	first, err := service.Search(context.Background(), request)
	require.NoError(t, err)
	require.False(t, first.Cached)
	require.Equal(t, 1, cache.stores)

	second, err := service.Search(context.Background(), request)
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, 2, cache.lookups)
	require.Equal(t, 1, cache.stores)

	first.Cached = true
	require.Equal(t, first, second)
}

func TestService_SearchCacheErrors(t *testing.T) {
	cache := newFakeCache()
	cache.lookupErr = errors.New("lookup failed")
	cache.storeErr = errors.New("store failed")

	service := NewService(testConfig, cache)

	response, err := service.Search(context.Background(), models.SearchRequest{Game: startGame})
	require.NoError(t, err)
	require.False(t, response.Cached)
	require.Equal(t, 1, cache.lookups)
	require.Equal(t, 1, cache.stores)
}

func TestService_SearchPass(t *testing.T) {
	service := NewService(testConfig, nil)

	// Nobody can move, the game string still names a side to move.
	game := othello.NewGameFromBoard(othello.NewBoardMust(0x0F, 0xF0), othello.Black)

	response, err := service.Search(context.Background(), models.SearchRequest{Game: game.String()})
	require.NoError(t, err)
	require.Nil(t, response.Move)
	require.Nil(t, response.Square)
}

func TestService_SearchSinglePass(t *testing.T) {
	cache := newFakeCache()
	service := NewService(testConfig, cache)

	// White a1, b1 and c1, black d1: Black has no move, White can play e1.
	board := othello.NewBoardMust(1<<0|1<<1|1<<2, 1<<3)

	response, err := service.Search(context.Background(), models.SearchRequest{Game: board.String() + "-b"})
	require.NoError(t, err)
	require.Equal(t, "black", response.Player)
	require.Nil(t, response.Move)
	require.Nil(t, response.Square)
	require.Equal(t, 127, response.Score)
	require.Equal(t, uint64(0), response.Nodes)

	// The cache entry belongs to the side that has to pass.
	_, ok := cache.results[cacheKey{board, othello.Black, testConfig.DefaultDepth}]
	require.True(t, ok)

	// After the pass White gets its move.
	response, err = service.Search(context.Background(), models.SearchRequest{Game: board.String() + "-w"})
	require.NoError(t, err)
	require.Equal(t, "white", response.Player)
	require.NotNil(t, response.Move)
	require.Equal(t, "e1", *response.Move)
	require.Equal(t, 4, *response.Square)
}

func TestNewServiceFromServices(t *testing.T) {
	service := NewServiceFromServices(testConfig, &services.Services{})
	require.Nil(t, service.cache)

	service = NewServiceFromServices(testConfig, nil)
	require.Nil(t, service.cache)
}
