package ws

import (
	"encoding/json"

	"github.com/lk16/reversi/internal/models"
)

const (
	searchRequestEvent = "search_request"
	movesRequestEvent  = "moves_request"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type SearchRequest = models.SearchRequest

type MovesRequest struct {
	Game string `json:"game"`
}

type MovesResponse struct {
	Player   string   `json:"player"`
	Moves    []string `json:"moves"`
	GameOver bool     `json:"game_over"`
}
