package game

import (
	"errors"
	"strings"

	"github.com/tahcohcat/detective-quest/internal/mansion"
)

// Move is one browsing decision by the player.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
	MoveStop
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveStop:
		return "stop"
	}
	return "unknown"
}

var ErrBadMove = errors.New("game: expected left, right or stop")

// ParseMove maps player text onto a Move. Single-letter shortcuts are
// accepted; anything else is ErrBadMove, which input layers answer with a
// re-prompt.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return MoveLeft, nil
	case "right", "r":
		return MoveRight, nil
	case "stop", "s":
		return MoveStop, nil
	}
	return MoveStop, ErrBadMove
}

// Explorer feeds the session player decisions. Implementations own the
// prompting and re-prompting on malformed text; the session only ever sees
// well-formed moves.
type Explorer interface {
	// NextMove asks for the next step out of the current room.
	NextMove(current *mansion.Room) (Move, error)
	// Accuse asks for the end-of-session accusation.
	Accuse() (string, error)
}

// Reporter receives the discrete events a session emits. It is an in-process
// interface: the session decides what happened, the reporter decides how it
// looks.
type Reporter interface {
	RoomEntered(name string)
	ClueFound(clue, suspect string)
	NoClue(room string)
	PathUnavailable(dir mansion.Direction)
	LeafReached(name string)
	ClueList(clues []string)
	ClueAttribution(clue, suspect string, found bool)
	Verdict(v Verdict)
}

// Verdict is the outcome of judgment: how many collected clues implicate the
// accused, against the evidence threshold. Hint carries a close suspect name
// when the accusation matched nothing.
type Verdict struct {
	Accused   string
	Tally     int
	Threshold int
	Sustained bool
	Hint      string
}
