// Package console adapts a terminal to the game's Explorer and Reporter
// interfaces. All prompting, re-prompting and formatting lives here; the
// session core never touches an io stream.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tahcohcat/detective-quest/internal/game"
	"github.com/tahcohcat/detective-quest/internal/logger"
	"github.com/tahcohcat/detective-quest/internal/mansion"
)

type IO struct {
	in  *bufio.Scanner
	out io.Writer
}

var (
	_ game.Explorer = (*IO)(nil)
	_ game.Reporter = (*IO)(nil)
)

func New(in io.Reader, out io.Writer) *IO {
	return &IO{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *IO) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *IO) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// NextMove shows the exits out of the current room and keeps prompting until
// the player types a valid move.
func (c *IO) NextMove(current *mansion.Room) (game.Move, error) {
	c.printf("\nChoose your next path:\n")
	if left, err := current.Descend(mansion.DirLeft); err == nil {
		c.printf("  [l] Left  (go to %s)\n", left.Name)
	}
	if right, err := current.Descend(mansion.DirRight); err == nil {
		c.printf("  [r] Right (go to %s)\n", right.Name)
	}
	c.printf("  [s] Stop exploring\n")

	for {
		c.printf("Your choice: ")
		line, err := c.readLine()
		if err != nil {
			return game.MoveStop, err
		}
		move, err := game.ParseMove(line)
		if err != nil {
			c.printf("Invalid option. Use 'l', 'r' or 's'.\n")
			continue
		}
		return move, nil
	}
}

// Accuse prompts for the accusation, re-prompting on empty input.
func (c *IO) Accuse() (string, error) {
	for {
		c.printf("\nWho do you accuse? ")
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			c.printf("Name a suspect.\n")
			continue
		}
		return line, nil
	}
}

func (c *IO) RoomEntered(name string) {
	c.printf("\nYou are in: %s**%s**%s\n", logger.ColorBold, name, logger.ColorReset)
}

func (c *IO) ClueFound(clue, suspect string) {
	if suspect == "" {
		c.printf("%s🔎 You found a clue: %q%s\n", logger.ColorGreen, clue, logger.ColorReset)
		return
	}
	c.printf("%s🔎 You found a clue: %q. It points at %s.%s\n", logger.ColorGreen, clue, suspect, logger.ColorReset)
}

func (c *IO) NoClue(room string) {
	c.printf("Nothing of interest here.\n")
}

func (c *IO) PathUnavailable(dir mansion.Direction) {
	c.printf("%sNo path to the %s. Try again.%s\n", logger.ColorYellow, dir, logger.ColorReset)
}

func (c *IO) LeafReached(name string) {
	c.printf("\n%s has no further paths. The exploration ends here.\n", name)
}

func (c *IO) ClueList(clues []string) {
	if len(clues) == 0 {
		c.printf("\nYou collected no clues.\n")
		return
	}
	c.printf("\nClues collected, in order:\n")
	for _, clue := range clues {
		c.printf("  - %s\n", clue)
	}
}

func (c *IO) ClueAttribution(clue, suspect string, found bool) {
	if !found {
		c.printf("  %q implicates nobody.\n", clue)
		return
	}
	c.printf("  %q implicates %s%s%s.\n", clue, logger.ColorBold, suspect, logger.ColorReset)
}

func (c *IO) Verdict(v game.Verdict) {
	c.printf("\nYou accuse %s%s%s.\n", logger.ColorBold, v.Accused, logger.ColorReset)
	c.printf("%d of the clues back the accusation (needed %d).\n", v.Tally, v.Threshold)
	if v.Sustained {
		c.printf("%s⚖️  The accusation is sustained. Case closed.%s\n", logger.ColorGreen, logger.ColorReset)
		return
	}
	c.printf("%s⚖️  The evidence is too weak. The suspect walks free.%s\n", logger.ColorRed, logger.ColorReset)
	if v.Hint != "" {
		c.printf("Perhaps you meant %s?\n", v.Hint)
	}
}
