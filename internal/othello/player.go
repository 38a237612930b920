package othello

import "fmt"

// Player identifies one of the two sides.
type Player int

const (
	Black Player = iota
	White
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("invalid player: %d", int(p)))
}

// String returns "black" or "white".
func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// ParsePlayer parses "black"/"b" or "white"/"w".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "black", "b", "Black", "B":
		return Black, nil
	case "white", "w", "White", "W":
		return White, nil
	}
	return Black, fmt.Errorf("invalid player: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Player) MarshalText() ([]byte, error) {
	if p != Black && p != White {
		return nil, fmt.Errorf("invalid player: %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = player
	return nil
}
