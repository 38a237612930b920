package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lk16/reversi/internal/othello"
)

// Moves is a list of squares that implements sql.Scanner for postgres
// integer arrays and marshals to JSON in field notation.
type Moves []othello.Square

// Scan implements the sql.Scanner interface for Moves.
func (m *Moves) Scan(value interface{}) error {
	var s string

	switch v := value.(type) {
	case []byte:
		if v == nil {
			return errors.New("cannot scan nil into Moves")
		}
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("cannot scan %T into Moves", value)
	}

	// We should have a string that looks like "{1,2,3}"
	s = strings.Trim(s, "{}")

	if s == "" {
		*m = Moves{}
		return nil
	}

	parts := strings.Split(s, ",")

	moves := make(Moves, len(parts))
	for i, part := range parts {
		move, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("cannot convert %s to int: %w", part, err)
		}
		moves[i] = othello.Square(move)
	}
	*m = moves

	return nil
}

// Ints returns the moves as plain integers.
func (m Moves) Ints() []int64 {
	ints := make([]int64, len(m))
	for i, move := range m {
		ints[i] = int64(move)
	}
	return ints
}

// MarshalJSON writes the moves as field notation, e.g. ["f5","d6"].
func (m Moves) MarshalJSON() ([]byte, error) {
	fields := make([]string, len(m))
	for i, move := range m {
		fields[i] = move.String()
	}
	return json.Marshal(fields)
}

// UnmarshalJSON reads moves in field notation.
func (m *Moves) UnmarshalJSON(data []byte) error {
	var fields []string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	moves := make(Moves, len(fields))
	for i, field := range fields {
		move, err := othello.ParseSquare(field)
		if err != nil {
			return err
		}
		moves[i] = move
	}
	*m = moves

	return nil
}
