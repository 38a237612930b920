package engine

import "github.com/lk16/reversi/internal/othello"

// Node is a board in the search tree with the side that is really to move
// and the legal moves of that side.
type Node struct {
	board  othello.Board
	player othello.Player
	moves  othello.MoveSet
}

// NewNode creates a node for the given board and side to move.
func NewNode(board othello.Board, player othello.Player) Node {
	return Node{
		board:  board,
		player: player,
		moves:  board.LegalMoves(player),
	}
}

// Board returns the board of the node.
func (n Node) Board() othello.Board {
	return n.board
}

// Player returns the side to move.
func (n Node) Player() othello.Player {
	return n.player
}

// Moves returns the legal moves of the side to move.
func (n Node) Moves() othello.MoveSet {
	return n.moves
}

// Advance plays a move and returns the child node. The opponent moves next
// unless it has to pass. When neither side can move, the child has no moves.
func (n Node) Advance(move othello.Square) Node {
	board := n.board.ApplyMove(move, n.player)

	opponent := n.player.Opponent()
	if moves := board.LegalMoves(opponent); !moves.IsEmpty() {
		return Node{board: board, player: opponent, moves: moves}
	}

	return NewNode(board, n.player)
}
