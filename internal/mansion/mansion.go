package mansion

import (
	"errors"
	"fmt"
)

// Direction of a corridor leading out of a room.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

var (
	// ErrPathUnavailable means the chosen exit has no room behind it. This is
	// an expected outcome of exploration, not a construction failure.
	ErrPathUnavailable = errors.New("mansion: path unavailable")

	ErrBadDirection  = errors.New("mansion: direction must be left or right")
	ErrNoRooms       = errors.New("mansion: blueprint has no rooms")
	ErrEmptyRoomID   = errors.New("mansion: room id must not be empty")
	ErrEmptyRoomName = errors.New("mansion: room name must not be empty")
	ErrDuplicateRoom = errors.New("mansion: duplicate room id")
	ErrUnknownRoom   = errors.New("mansion: edge references unknown room")
	ErrSlotTaken     = errors.New("mansion: child slot already wired")
	ErrRewiredChild  = errors.New("mansion: room wired under two parents")
	ErrBadEntrance   = errors.New("mansion: entrance missing or not a root")
	ErrUnreachable   = errors.New("mansion: room not reachable from entrance")
)

// Room is a node of the mansion map. Exits are wired once by Build and never
// change afterwards; the only mutation a room ever sees is its clue being
// cleared on first collection.
type Room struct {
	Name string

	clue    string
	suspect string

	left  *Room
	right *Room
}

// IsLeaf reports whether the room has no exits. Reaching a leaf ends the
// exploration.
func (r *Room) IsLeaf() bool {
	return r.left == nil && r.right == nil
}

// Descend returns the room behind the given exit. An absent exit yields
// ErrPathUnavailable; the caller is expected to re-prompt, not abort.
func (r *Room) Descend(dir Direction) (*Room, error) {
	var next *Room
	switch dir {
	case DirLeft:
		next = r.left
	case DirRight:
		next = r.right
	default:
		return nil, ErrBadDirection
	}
	if next == nil {
		return nil, ErrPathUnavailable
	}
	return next, nil
}

// CollectClue hands out the room's clue exactly once. The first call on a
// room holding a clue returns it together with the implicated suspect and
// clears the room; every later call reports ok=false.
func (r *Room) CollectClue() (clue, suspect string, ok bool) {
	if r.clue == "" {
		return "", "", false
	}
	clue, suspect = r.clue, r.suspect
	r.clue = ""
	r.suspect = ""
	return clue, suspect, true
}

// Map owns the room tree for one session.
type Map struct {
	entrance *Room
	live     int
}

// Entrance returns the room exploration starts from, or nil after Teardown.
func (m *Map) Entrance() *Room {
	return m.entrance
}

// Live reports how many rooms are still held by the map.
func (m *Map) Live() int {
	return m.live
}

// Build wires a room tree from the blueprint. The blueprint is data: an
// arena of rooms keyed by id plus (parent, direction, child) edges, so test
// fixtures and shipped mansions are plain JSON rather than code. Every
// inconsistency is surfaced as an error; Build never returns a partial map.
func Build(bp *Blueprint) (*Map, error) {
	if bp == nil || len(bp.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	arena := make(map[string]*Room, len(bp.Rooms))
	for _, spec := range bp.Rooms {
		if spec.ID == "" {
			return nil, ErrEmptyRoomID
		}
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: room %q", ErrEmptyRoomName, spec.ID)
		}
		if _, exists := arena[spec.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoom, spec.ID)
		}
		arena[spec.ID] = &Room{
			Name:    spec.Name,
			clue:    spec.Clue,
			suspect: spec.Suspect,
		}
	}

	wired := make(map[string]bool, len(bp.Edges))
	for _, e := range bp.Edges {
		parent, ok := arena[e.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent %q", ErrUnknownRoom, e.Parent)
		}
		child, ok := arena[e.Child]
		if !ok {
			return nil, fmt.Errorf("%w: child %q", ErrUnknownRoom, e.Child)
		}
		if wired[e.Child] {
			return nil, fmt.Errorf("%w: %q", ErrRewiredChild, e.Child)
		}
		switch e.Direction {
		case DirLeft:
			if parent.left != nil {
				return nil, fmt.Errorf("%w: %q left", ErrSlotTaken, e.Parent)
			}
			parent.left = child
		case DirRight:
			if parent.right != nil {
				return nil, fmt.Errorf("%w: %q right", ErrSlotTaken, e.Parent)
			}
			parent.right = child
		default:
			return nil, fmt.Errorf("%w: got %q", ErrBadDirection, e.Direction)
		}
		wired[e.Child] = true
	}

	entrance, ok := arena[bp.Entrance]
	if !ok || wired[bp.Entrance] {
		return nil, fmt.Errorf("%w: %q", ErrBadEntrance, bp.Entrance)
	}

	// Every room with at most one parent and a parentless entrance makes the
	// reachability walk a finite tree walk.
	if n := countReachable(entrance); n != len(arena) {
		return nil, fmt.Errorf("%w: reached %d of %d rooms", ErrUnreachable, n, len(arena))
	}

	return &Map{entrance: entrance, live: len(arena)}, nil
}

func countReachable(r *Room) int {
	if r == nil {
		return 0
	}
	return 1 + countReachable(r.left) + countReachable(r.right)
}

// Teardown releases every room exactly once, children before parent. Calling
// it again is a no-op.
func (m *Map) Teardown() {
	m.release(m.entrance)
	m.entrance = nil
}

func (m *Map) release(r *Room) {
	if r == nil {
		return
	}
	m.release(r.left)
	m.release(r.right)
	r.left = nil
	r.right = nil
	m.live--
}
