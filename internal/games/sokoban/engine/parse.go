package engine

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownToken is returned for a map symbol outside the grammar.
	ErrUnknownToken = errors.New("unknown map token")
	// ErrNoPlayer is returned for a map without a player.
	ErrNoPlayer = errors.New("map has no player")
	// ErrMultiplePlayers is returned for a map with more than one player.
	ErrMultiplePlayers = errors.New("map has more than one player")
	// ErrEmptyMap is returned for a map without rows.
	ErrEmptyMap = errors.New("map is empty")
)

// TokenError locates an unknown token. Row and Col are zero-based.
type TokenError struct {
	Row   int
	Col   int
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s %q at row %d, column %d", ErrUnknownToken, e.Token, e.Row, e.Col)
}

// Unwrap returns ErrUnknownToken.
func (e *TokenError) Unwrap() error {
	return ErrUnknownToken
}

// Map tokens.
const (
	TokenFloor    = "."
	TokenWall     = "W"
	TokenPlayer   = "P"
	TokenRedBox   = "RB"
	TokenBlueBox  = "BB"
	TokenRedSpot  = "RS"
	TokenBlueSpot = "BS"
	TokenNothing  = "N"
)

// ParseMap builds a World from rows of whitespace-separated tokens.
// Blank lines are skipped. Width is the longest row.
// Every token except N puts floor under its tile.
func ParseMap(text string, tileSize float64) (*World, error) {
	var rows [][]string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	w := NewWorld(width, len(rows), tileSize)
	players := 0
	for y, row := range rows {
		for x, tok := range row {
			if tok == TokenNothing {
				continue
			}

			var (
				kind   Kind
				colour Colour
			)
			switch tok {
			case TokenFloor:
			case TokenWall:
				kind = KindWall
			case TokenPlayer:
				kind = KindPlayer
				players++
			case TokenRedBox:
				kind, colour = KindBox, ColourRed
			case TokenBlueBox:
				kind, colour = KindBox, ColourBlue
			case TokenRedSpot:
				kind, colour = KindBoxSpot, ColourRed
			case TokenBlueSpot:
				kind, colour = KindBoxSpot, ColourBlue
			default:
				return nil, &TokenError{Row: y, Col: x, Token: tok}
			}

			w.AddFloor(x, y)
			if kind != 0 {
				w.Spawn(kind, colour, x, y)
			}
		}
	}

	switch {
	case players == 0:
		return nil, ErrNoPlayer
	case players > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePlayers, players)
	}
	return w, nil
}

// FormatMap renders a world back into map tokens. A box on a spot is
// written as the box; the spot is lost.
func FormatMap(w *World) string {
	grid := make([][]string, w.Height)
	for y := range grid {
		grid[y] = make([]string, w.Width)
		for x := range grid[y] {
			if w.IsFloor(Coord{X: x, Y: y}) {
				grid[y][x] = TokenFloor
			} else {
				grid[y][x] = TokenNothing
			}
		}
	}

	for _, layer := range []int{LayerSpot, LayerTop} {
		for _, e := range w.Entities() {
			if e.Pos.Z != layer || !w.InBounds(e.Pos.Coord()) {
				continue
			}
			grid[e.Pos.Y][e.Pos.X] = tokenFor(e)
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func tokenFor(e Entity) string {
	switch e.Kind {
	case KindWall:
		return TokenWall
	case KindPlayer:
		return TokenPlayer
	case KindBox:
		if e.Colour == ColourBlue {
			return TokenBlueBox
		}
		return TokenRedBox
	case KindBoxSpot:
		if e.Colour == ColourBlue {
			return TokenBlueSpot
		}
		return TokenRedSpot
	}
	return TokenFloor
}
