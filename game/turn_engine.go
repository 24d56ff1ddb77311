package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/dicepool/farkle/dice"
	"github.com/dicepool/farkle/domain"
	"github.com/dicepool/farkle/events"
)

// GameState represents where the current turn stands.
type GameState string

const (
	// StateFirstRoll means the turn just started and nothing has been rolled.
	StateFirstRoll GameState = "first_roll"
	// StateRolling means a selection was confirmed this sub-roll; the player
	// may roll again, bank, or undo the confirm.
	StateRolling GameState = "rolling"
	// StatePicking means the last roll was simple; the player must toggle
	// dice and confirm a pick before anything else.
	StatePicking GameState = "picking"
	// StateTurnEnded is terminal for the turn.
	StateTurnEnded GameState = "turn_ended"
)

var (
	// ErrMustPickFirst rejects a roll while a pick is still unconfirmed.
	ErrMustPickFirst = errors.New("you must pick from the die pool before rolling")
	// ErrNotPicking rejects toggle/confirm intents when no pick is underway.
	ErrNotPicking = errors.New("there is no roll awaiting a pick")
	// ErrNothingToBank rejects banking before any selection was confirmed
	// this sub-roll.
	ErrNothingToBank = errors.New("you must pick from the die pool before banking")
	// ErrNothingToUndo rejects undoing when no confirm is pending reversal.
	ErrNothingToUndo = errors.New("there is no confirmed selection to undo")
	// ErrTurnEnded rejects any intent after the turn reached its terminal state.
	ErrTurnEnded = errors.New("the turn has already ended")
)

// RollOutcome is the discriminated result of a Roll intent, consumed by the
// outer layer for display.
type RollOutcome struct {
	Type      domain.RollType
	Selection domain.Selection // only meaningful for straight / triple pair
	HotDice   bool
	Dice      [domain.PoolSize]dice.Die
}

// TurnEngine drives a single player-turn through the roll / pick / bank
// cycle, consuming Roll and Player operations and emitting game events. One
// engine serves the whole game; BeginTurn rewinds it for the next player.
type TurnEngine struct {
	gameID string
	roller dice.Roller

	player *domain.Player
	roll   *domain.Roll
	state  GameState

	eventStore    events.EventStore
	eventHandlers []events.EventHandler
}

// NewTurnEngine creates an engine for the given game. The roller is the only
// source of randomness; inject a deterministic one in tests.
func NewTurnEngine(gameID string, roller dice.Roller, store events.EventStore) *TurnEngine {
	return &TurnEngine{
		gameID: gameID,
		roller: roller,
		roll:   domain.NewRollPool(),
		state:  StateTurnEnded,

		eventStore: store,
	}
}

// RegisterEventHandler registers a callback invoked for every emitted event.
func (te *TurnEngine) RegisterEventHandler(handler events.EventHandler) {
	te.eventHandlers = append(te.eventHandlers, handler)
}

// emitEvent stores the event and notifies all registered handlers.
func (te *TurnEngine) emitEvent(event events.Event) {
	if te.eventStore != nil {
		if err := te.eventStore.Append(event); err != nil {
			log.Warn().Err(err).Str("event", event.EventName()).Msg("failed to store event")
		}
	}
	for _, handler := range te.eventHandlers {
		handler(event)
	}
}

// BeginTurn hands the dice to the given player: a fresh pool of six unpicked
// dice and the FirstRoll state.
func (te *TurnEngine) BeginTurn(player *domain.Player, round int) {
	te.player = player
	te.roll = domain.NewRollPool()
	te.state = StateFirstRoll

	log.Debug().
		Str("game", te.gameID).
		Str("player", player.Name).
		Int("round", round).
		Msg("turn started")

	te.emitEvent(events.TurnStarted{
		GameID:     te.gameID,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Round:      round,
	})
}

// State returns the current turn state.
func (te *TurnEngine) State() GameState {
	return te.state
}

// Player returns the player holding the turn.
func (te *TurnEngine) Player() *domain.Player {
	return te.player
}

// Dice returns a snapshot of the current pool.
func (te *TurnEngine) Dice() [domain.PoolSize]dice.Die {
	return te.roll.Dice()
}

// Pickable returns the live pickability vector for the current pool.
func (te *TurnEngine) Pickable() [domain.PoolSize]bool {
	return te.roll.DeterminePickable()
}

// Roll performs the Roll intent: re-roll the free dice and classify the
// result. A farkle discards the hand and ends the turn. A straight or triple
// pair scores all six dice into the hand and leaves the state unchanged, so
// the next roll triggers hot dice. A simple roll moves to picking.
func (te *TurnEngine) Roll() (RollOutcome, error) {
	switch te.state {
	case StatePicking:
		return RollOutcome{}, ErrMustPickFirst
	case StateTurnEnded:
		return RollOutcome{}, ErrTurnEnded
	}

	hot := te.roll.Exhausted()
	te.roll.NewRoll(te.roller)
	if hot {
		te.emitEvent(events.HotDice{GameID: te.gameID, PlayerID: te.player.ID})
	}

	selection, rollType := te.roll.DetermineType()
	outcome := RollOutcome{
		Type:      rollType,
		Selection: selection,
		HotDice:   hot,
		Dice:      te.roll.Dice(),
	}

	te.emitEvent(events.DiceRolled{
		GameID:   te.gameID,
		PlayerID: te.player.ID,
		Values:   diceValues(outcome.Dice),
		RollType: string(rollType),
	})

	switch rollType {
	case domain.RollTypeFarkle:
		lost := te.player.HandTotal()
		te.player.EmptyHand()
		te.state = StateTurnEnded
		te.emitEvent(events.Farkled{
			GameID:     te.gameID,
			PlayerID:   te.player.ID,
			PointsLost: lost,
		})
	case domain.RollTypeStraight, domain.RollTypeTriplePair:
		te.player.AddSelection(selection)
		te.emitEvent(events.SelectionConfirmed{
			GameID:   te.gameID,
			PlayerID: te.player.ID,
			Values:   selection.Values(),
			Points:   selection.Value(),
		})
		// State deliberately unchanged: all six dice are now locked, so the
		// next Roll intent goes through the hot dice reset.
	case domain.RollTypeSimple:
		te.state = StatePicking
	}

	return outcome, nil
}

// Toggle performs the Pick intent on a single die and reports how it went.
// Only legal while picking. Panics on an out-of-range index.
func (te *TurnEngine) Toggle(i int) (domain.ToggleResult, error) {
	if te.state != StatePicking {
		return "", te.rejectionError()
	}
	return te.roll.ToggleDie(i), nil
}

// ConfirmPick scores the toggled dice into the player's hand. On an invalid
// selection the toggle pass is reverted and the player keeps picking.
func (te *TurnEngine) ConfirmPick() (domain.Selection, error) {
	if te.state != StatePicking {
		return domain.Selection{}, te.rejectionError()
	}

	selection, err := te.roll.ConstructSelection()
	if err != nil {
		te.roll.Deselect()
		return domain.Selection{}, err
	}

	te.player.AddSelection(selection)
	te.state = StateRolling

	te.emitEvent(events.SelectionConfirmed{
		GameID:   te.gameID,
		PlayerID: te.player.ID,
		Values:   selection.Values(),
		Points:   selection.Value(),
	})
	return selection, nil
}

// Bank drains the hand into the player's permanent score and ends the turn.
func (te *TurnEngine) Bank() (int, error) {
	if te.state != StateRolling {
		if te.state == StateTurnEnded {
			return 0, ErrTurnEnded
		}
		return 0, ErrNothingToBank
	}

	banked := te.player.Bank()
	te.state = StateTurnEnded

	log.Debug().
		Str("game", te.gameID).
		Str("player", te.player.Name).
		Int("points", banked).
		Msg("points banked")

	te.emitEvent(events.PointsBanked{
		GameID:   te.gameID,
		PlayerID: te.player.ID,
		Points:   banked,
		NewScore: te.player.Score(),
	})
	return banked, nil
}

// UndoPick reverts the most recent confirm: the toggled dice return to the
// pool and the selection is popped off the hand, back to picking.
func (te *TurnEngine) UndoPick() (domain.Selection, error) {
	if te.state != StateRolling {
		if te.state == StateTurnEnded {
			return domain.Selection{}, ErrTurnEnded
		}
		return domain.Selection{}, ErrNothingToUndo
	}

	te.roll.Deselect()
	selection, ok := te.player.UndoSelection()
	if !ok {
		return domain.Selection{}, ErrNothingToUndo
	}
	te.state = StatePicking

	te.emitEvent(events.SelectionUndone{
		GameID:   te.gameID,
		PlayerID: te.player.ID,
		Values:   selection.Values(),
		Points:   selection.Value(),
	})
	return selection, nil
}

// rejectionError maps a non-picking state to the error explaining why a
// picking intent is illegal right now.
func (te *TurnEngine) rejectionError() error {
	if te.state == StateTurnEnded {
		return ErrTurnEnded
	}
	return ErrNotPicking
}

func diceValues(pool [domain.PoolSize]dice.Die) []int {
	values := make([]int, len(pool))
	for i, d := range pool {
		values[i] = d.Value
	}
	return values
}
