// Package cli is the interactive terminal front end. It renders engine
// results and forwards player intents; all game rules live in the domain and
// game packages.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sanity-io/litter"

	"github.com/dicepool/farkle/domain"
	"github.com/dicepool/farkle/events"
	"github.com/dicepool/farkle/game"
)

var errExit = errors.New("exit requested")

const helpText = `help          - show this help text
roll          - roll the die pool
view          - view the current roll
pick <die>    - toggle die 1-6 in the current pick
confirm       - confirm the current pick
unpick        - undo the last confirmed pick
hand          - show your current hand
bank          - bank all points currently in hand
score         - show the leaderboard
exit          - immediately exit the game`

// Session drives one interactive game over a line-based terminal.
type Session struct {
	game *game.Game
	in   *bufio.Scanner
	out  io.Writer
}

// NewSession builds a session for the given game. With verbose set, every
// emitted event is dumped to the output.
func NewSession(g *game.Game, in *bufio.Scanner, out io.Writer, verbose bool) *Session {
	s := &Session{game: g, in: in, out: out}
	if verbose {
		g.RegisterEventHandler(s.dumpEvent)
	}
	return s
}

func (s *Session) dumpEvent(event events.Event) {
	fmt.Fprintln(s.out, "---")
	fmt.Fprintln(s.out, "event:", event.EventName())
	fmt.Fprint(s.out, litter.Sdump(event), "\n")
}

// Run plays the game to completion, or until the player exits.
func (s *Session) Run() error {
	if err := s.game.Start(); err != nil {
		return err
	}

	for !s.game.Finished() {
		player := s.game.CurrentPlayer()
		fmt.Fprintf(s.out, "\n%s's turn, round %d of %d. Current score: %d.\n",
			player.Name, s.game.Round(), s.game.Rounds(), player.Score())

		if err := s.playTurn(); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
		if err := s.game.AdvanceTurn(); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out, "\nGame over!")
	s.printLeaderboard()
	return nil
}

// playTurn reads commands until the current turn reaches its terminal state.
func (s *Session) playTurn() error {
	engine := s.game.Engine()

	for engine.State() != game.StateTurnEnded {
		fmt.Fprintf(s.out, "%s> ", engine.Player().Name)
		if !s.in.Scan() {
			return errExit
		}

		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "help":
			fmt.Fprintln(s.out, helpText)
		case "roll":
			s.handleRoll()
		case "view":
			renderRoll(s.out, engine.Dice())
		case "pick":
			s.handlePick(fields[1:])
		case "confirm":
			s.handleConfirm()
		case "unpick":
			s.handleUnpick()
		case "hand":
			renderHand(s.out, engine.Player())
		case "bank":
			s.handleBank()
		case "score":
			s.printLeaderboard()
		case "exit":
			return errExit
		default:
			fmt.Fprintln(s.out, "Invalid command. Type 'help' to see a list of commands.")
		}
	}
	return nil
}

func (s *Session) handleRoll() {
	engine := s.game.Engine()

	outcome, err := engine.Roll()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	if outcome.HotDice {
		fmt.Fprintln(s.out, "Hot dice! Six fresh dice.")
	}
	renderRoll(s.out, outcome.Dice)

	switch outcome.Type {
	case domain.RollTypeFarkle:
		fmt.Fprintln(s.out, "Farkle! Your hand is lost and your turn is over.")
	case domain.RollTypeStraight:
		fmt.Fprintf(s.out, "Straight! Selected %d points' worth of dice.\n", outcome.Selection.Value())
	case domain.RollTypeTriplePair:
		fmt.Fprintf(s.out, "Triple pair! Selected %d points' worth of dice.\n", outcome.Selection.Value())
	case domain.RollTypeSimple:
		fmt.Fprintln(s.out, "Pick your dice with 'pick <die>' and confirm with 'confirm'.")
	}
}

func (s *Session) handlePick(args []string) {
	engine := s.game.Engine()

	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: pick <die>, with die between 1 and 6.")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > domain.PoolSize {
		fmt.Fprintln(s.out, "Usage: pick <die>, with die between 1 and 6.")
		return
	}

	result, err := engine.Toggle(n - 1)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	switch result {
	case domain.TogglePicked:
		fmt.Fprintf(s.out, "Picked die %d.\n", n)
	case domain.ToggleUnpicked:
		fmt.Fprintf(s.out, "Unpicked die %d.\n", n)
	case domain.ToggleNotPickable:
		fmt.Fprintf(s.out, "Die %d cannot be picked: it does not score right now.\n", n)
	case domain.ToggleNotUnpickable:
		fmt.Fprintf(s.out, "Die %d is locked from an earlier pick.\n", n)
	}
}

func (s *Session) handleConfirm() {
	engine := s.game.Engine()

	selection, err := engine.ConfirmPick()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "Selected %d points' worth of dice. Roll again or bank.\n", selection.Value())
}

func (s *Session) handleUnpick() {
	engine := s.game.Engine()

	selection, err := engine.UndoPick()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "Returned %d points' worth of dice to the pool.\n", selection.Value())
}

func (s *Session) handleBank() {
	engine := s.game.Engine()

	banked, err := engine.Bank()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "Banked %d points.\n", banked)
}

func (s *Session) printLeaderboard() {
	for i, player := range s.game.Leaderboard() {
		fmt.Fprintf(s.out, "%d. %s - %d\n", i+1, player.Name, player.Score())
	}
}

// PromptPlayerNames asks for each player's display name. Empty input falls
// back to a numbered default.
func PromptPlayerNames(in *bufio.Scanner, out io.Writer, count int) []string {
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(out, "Enter name for player %d: ", i)
		name := ""
		if in.Scan() {
			name = strings.TrimSpace(in.Text())
		}
		if name == "" {
			name = fmt.Sprintf("Player %d", i)
		}
		names = append(names, name)
	}
	return names
}
