package game

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/schollz/closestmatch"

	"github.com/tahcohcat/detective-quest/internal/clueindex"
	"github.com/tahcohcat/detective-quest/internal/ledger"
	"github.com/tahcohcat/detective-quest/internal/logger"
	"github.com/tahcohcat/detective-quest/internal/mansion"
)

// DefaultThreshold is the minimum number of clues that must implicate the
// accused for the accusation to be sustained.
const DefaultThreshold = 2

var ErrNoEntrance = errors.New("game: mansion has no entrance")

// Session drives one player through the mansion: it walks the room tree on
// the player's moves, files every discovered clue into the index and the
// ledger, and judges the final accusation. A session owns its three
// structures exclusively for its lifetime and tears all of them down on
// every exit path.
type Session struct {
	id        string
	rooms     *mansion.Map
	clues     *clueindex.Index
	suspects  *ledger.Ledger
	explorer  Explorer
	reporter  Reporter
	threshold int

	// distinct suspect names in order of first appearance, for the
	// did-you-mean hint on a missed accusation
	seen []string

	logger *logger.Log
}

func NewSession(rooms *mansion.Map, clues *clueindex.Index, suspects *ledger.Ledger, explorer Explorer, reporter Reporter, threshold int) *Session {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Session{
		id:        uuid.NewString(),
		rooms:     rooms,
		clues:     clues,
		suspects:  suspects,
		explorer:  explorer,
		reporter:  reporter,
		threshold: threshold,
		logger:    logger.New(),
	}
}

// ID returns the session identifier used in diagnostics.
func (s *Session) ID() string {
	return s.id
}

// Run plays the session to its verdict: browse until the player stops or a
// leaf forces the stop, then judge the accusation. The room map, clue index
// and suspect ledger are torn down before Run returns, whichever way it
// exits.
func (s *Session) Run(ctx context.Context) (Verdict, error) {
	defer s.teardown()

	cursor := s.rooms.Entrance()
	if cursor == nil {
		return Verdict{}, ErrNoEntrance
	}

	s.logger.Debug(fmt.Sprintf("session %s started at %q", s.id, cursor.Name))
	s.enter(cursor)

	for {
		if err := ctx.Err(); err != nil {
			return Verdict{}, fmt.Errorf("session %s cancelled: %w", s.id, err)
		}

		if cursor.IsLeaf() {
			s.reporter.LeafReached(cursor.Name)
			break
		}

		move, err := s.explorer.NextMove(cursor)
		if err != nil {
			return Verdict{}, fmt.Errorf("reading next move: %w", err)
		}
		if move == MoveStop {
			break
		}

		dir := mansion.DirLeft
		if move == MoveRight {
			dir = mansion.DirRight
		}
		next, err := cursor.Descend(dir)
		if errors.Is(err, mansion.ErrPathUnavailable) {
			// Normal outcome: cursor stays put, player chooses again.
			s.reporter.PathUnavailable(dir)
			continue
		}
		if err != nil {
			return Verdict{}, fmt.Errorf("descending %s from %q: %w", dir, cursor.Name, err)
		}

		cursor = next
		s.enter(cursor)
	}

	return s.judge()
}

// enter reports arrival in a room and files its clue, if the room still has
// one. Index insert and ledger insert form one session step: both are done
// before the event goes out, so no partial state is ever visible.
func (s *Session) enter(r *mansion.Room) {
	s.reporter.RoomEntered(r.Name)

	clue, suspect, ok := r.CollectClue()
	if !ok {
		s.reporter.NoClue(r.Name)
		return
	}

	s.clues.Insert(clue)
	if suspect != "" {
		s.suspects.Insert(clue, suspect)
		if !slices.Contains(s.seen, suspect) {
			s.seen = append(s.seen, suspect)
		}
	}
	s.logger.Debug(fmt.Sprintf("session %s collected clue %q in %q", s.id, clue, r.Name))
	s.reporter.ClueFound(clue, suspect)
}

// judge walks the sorted clues, resolves each to its suspect, and tallies
// exact matches against the accusation. A clue without an attribution and an
// accusation naming nobody both just contribute zero, they are not errors.
func (s *Session) judge() (Verdict, error) {
	clues := slices.Collect(s.clues.All())
	s.reporter.ClueList(clues)

	accused, err := s.explorer.Accuse()
	if err != nil {
		return Verdict{}, fmt.Errorf("reading accusation: %w", err)
	}

	tally := 0
	for _, clue := range clues {
		suspect, found := s.suspects.Lookup(clue)
		s.reporter.ClueAttribution(clue, suspect, found)
		if found && suspect == accused {
			tally++
		}
	}

	verdict := Verdict{
		Accused:   accused,
		Tally:     tally,
		Threshold: s.threshold,
		Sustained: tally >= s.threshold,
	}
	if tally == 0 {
		verdict.Hint = s.closestSuspect(accused)
	}

	s.reporter.Verdict(verdict)
	return verdict, nil
}

// closestSuspect suggests the nearest known suspect name when the accusation
// implicated nobody.
func (s *Session) closestSuspect(accused string) string {
	if len(s.seen) == 0 {
		return ""
	}
	cm := closestmatch.New(s.seen, []int{2})
	match := cm.Closest(accused)
	if match == accused {
		return ""
	}
	return match
}

func (s *Session) teardown() {
	s.rooms.Teardown()
	s.clues.Teardown()
	s.suspects.Teardown()
	s.logger.Debug(fmt.Sprintf("session %s torn down", s.id))
}
