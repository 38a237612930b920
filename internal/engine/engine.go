package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/lk16/reversi/internal/othello"
)

const (
	// MaxDepth is the deepest search allowed: one ply per empty square.
	MaxDepth = 60

	minScore int8 = math.MinInt8
	maxScore int8 = math.MaxInt8
)

var ErrInvalidDepth = errors.New("invalid search depth")

// State is the part of a game the engine reads. It is never modified.
type State interface {
	Board() othello.Board
	CurrentPlayer() othello.Player
}

// Stats holds the instrumentation of one search.
type Stats struct {
	Nodes    uint64
	Duration time.Duration
}

// NodesPerSecond returns the search speed.
func (s Stats) NodesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Nodes) / s.Duration.Seconds()
}

// Add accumulates the stats of another search.
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Duration += other.Duration
}

// Result is the outcome of a search. HasMove is false and Move is PassMove
// when the side to move has to pass.
type Result struct {
	Score   int8
	Move    othello.Square
	HasMove bool
	Stats   Stats
}

// Engine selects moves with a fixed depth alpha-beta search.
// It holds no per-search state, so one Engine can serve many callers.
type Engine struct {
	depth int
}

// New creates an engine that searches depth plies.
func New(depth int) (*Engine, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d, must be between 1 and %d", ErrInvalidDepth, depth, MaxDepth)
	}

	return &Engine{depth: depth}, nil
}

// NewMust creates an engine and panics if depth is invalid.
func NewMust(depth int) *Engine {
	e, err := New(depth)
	if err != nil {
		panic(err)
	}
	return e
}

// Depth returns the search depth in plies.
func (e *Engine) Depth() int {
	return e.depth
}

// Search finds the best move for the side to move. White maximizes the
// evaluation and Black minimizes it. Of equally scored moves the first one in
// square order is kept.
func (e *Engine) Search(state State) Result {
	start := time.Now()

	node := NewNode(state.Board(), state.CurrentPlayer())
	isWhite := node.player == othello.White

	result := Result{Score: maxScore, Move: othello.PassMove}
	if isWhite {
		result.Score = minScore
	}

	// Every root move is searched with a full window: the caller needs the
	// move, not just the score.
	for move := range node.moves.All() {
		score := e.minimax(node.Advance(move), e.depth-1, minScore, maxScore, &result.Stats)

		if (isWhite && score > result.Score) || (!isWhite && score < result.Score) {
			result.Score = score
			result.Move = move
			result.HasMove = true
		}
	}

	result.Stats.Duration = time.Since(start)

	slog.Debug("search finished",
		"depth", e.depth,
		"player", node.player,
		"score", result.Score,
		"move", result.Move,
		"has_move", result.HasMove,
		"nodes", result.Stats.Nodes,
		"duration", result.Stats.Duration,
	)

	return result
}

// minimax returns the alpha-beta score of node searched depth plies deep.
// A node without moves is evaluated as is, even if only one side has to pass.
func (e *Engine) minimax(node Node, depth int, alpha, beta int8, stats *Stats) int8 {
	stats.Nodes++

	if depth == 0 || node.moves.IsEmpty() {
		return Evaluate(node.board)
	}

	if node.player == othello.White {
		best := minScore

		for move := range node.moves.All() {
			best = max(best, e.minimax(node.Advance(move), depth-1, alpha, beta, stats))
			alpha = max(alpha, best)

			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := maxScore

	for move := range node.moves.All() {
		best = min(best, e.minimax(node.Advance(move), depth-1, alpha, beta, stats))
		beta = min(beta, best)

		if beta <= alpha {
			break
		}
	}
	return best
}

// Evaluate returns the material balance: white discs minus black discs.
func Evaluate(board othello.Board) int8 {
	white, black := board.Score()
	return int8(white - black)
}
