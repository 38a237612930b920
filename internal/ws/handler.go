package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/search"
)

// Conn is the part of a websocket connection the handler uses.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	searcher *search.Service
	ws       Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, searcher *search.Service) *Handler {
	return &Handler{searcher: searcher, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// handleMessage answers one request. Request errors are sent back to the
// client, other errors end the connection.
func (h *Handler) handleMessage(ctx context.Context, req *Incoming) (*Outgoing, error) {
	var (
		data any
		err  error
	)

	switch req.Event {
	case "":
		return nil, errors.New("event field is either empty or missing")
	case searchRequestEvent:
		data, err = h.handleSearchRequest(ctx, req)
	case movesRequestEvent:
		data, err = h.handleMovesRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}

	var requestErr *search.RequestError
	if errors.As(err, &requestErr) {
		return &Outgoing{ID: req.ID, Error: err.Error()}, nil
	}
	if err != nil {
		return nil, err
	}

	return &Outgoing{ID: req.ID, Data: data}, nil
}

// Handle handles the websocket connection until it is closed.
func (h *Handler) Handle(ctx context.Context) error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(ctx, req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleSearchRequest(ctx context.Context, req *Incoming) (any, error) {
	var reqData SearchRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws search request unmarshal error: %w", err)
	}

	return h.searcher.Search(ctx, reqData)
}

func (h *Handler) handleMovesRequest(req *Incoming) (any, error) {
	var reqData MovesRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws moves request unmarshal error: %w", err)
	}

	game, err := othello.ParseGame(reqData.Game)
	if err != nil {
		return nil, &search.RequestError{Err: err}
	}

	moves := game.LegalMoves().Squares()
	fields := make([]string, len(moves))
	for i, move := range moves {
		fields[i] = move.String()
	}

	return MovesResponse{
		Player:   game.CurrentPlayer().String(),
		Moves:    fields,
		GameOver: game.GameOver(),
	}, nil
}
