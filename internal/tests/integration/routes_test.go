package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/require"
)

const testTimeout = 30 * 1000 // milliseconds

func doRequest(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req, err := http.NewRequest(method, path, &payload)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	resp, err := tests.NewApp(testServices).Test(tests.WithToken(req), testTimeout)
	require.NoError(t, err)

	return resp
}

func TestPlayAndFetchGame(t *testing.T) {
	resp := doRequest(t, http.MethodPost, "/api/games", models.PlayGameRequest{BlackDepth: 2, WhiteDepth: 1})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.GameRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.Moves)

	resp = doRequest(t, http.MethodGet, "/api/games/"+created.ID, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.GameRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, created.Moves, fetched.Moves)

	resp = doRequest(t, http.MethodGet, "/api/games/00000000-0000-0000-0000-000000000000", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, "/api/games?limit=1", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var games []models.GameRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
	require.Len(t, games, 1)

	resp = doRequest(t, http.MethodGet, "/api/games/stats", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats []models.GameStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	require.NotEmpty(t, stats)
}

func TestSearchIsCached(t *testing.T) {
	request := models.SearchRequest{Game: tests.StartGame, Depth: 3}

	resp := doRequest(t, http.MethodPost, "/api/search", request)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var first models.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))

	resp = doRequest(t, http.MethodPost, "/api/search", request)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var second models.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))

	require.True(t, second.Cached)
	require.Equal(t, first.Score, second.Score)
	require.Equal(t, first.Nodes, second.Nodes)
}
