package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dicepool/farkle/dice"
	"github.com/dicepool/farkle/domain"
	"github.com/dicepool/farkle/events"
)

// ErrTurnInProgress rejects advancing while the current turn is still live.
var ErrTurnInProgress = errors.New("the current turn has not ended yet")

// Game orchestrates a full match: N players taking turns over a fixed number
// of rounds, one TurnEngine serving every turn.
type Game struct {
	ID string

	players []*domain.Player
	rounds  int
	round   int // 1-based, current round
	current int // index of the player holding the turn

	engine   *TurnEngine
	started  bool
	finished bool

	eventStore events.EventStore
}

// New builds a game for the given player names and round count.
func New(playerNames []string, rounds int, roller dice.Roller, store events.EventStore) (*Game, error) {
	if len(playerNames) < 1 {
		return nil, errors.New("need at least one player")
	}
	if rounds < 1 {
		return nil, errors.New("need at least one round")
	}

	players := make([]*domain.Player, len(playerNames))
	for i, name := range playerNames {
		players[i] = domain.NewPlayer(name)
	}

	g := &Game{
		ID:         uuid.NewString(),
		players:    players,
		rounds:     rounds,
		round:      1,
		eventStore: store,
	}
	g.engine = NewTurnEngine(g.ID, roller, store)
	return g, nil
}

// RegisterEventHandler registers a callback for every event the game emits.
// Register before calling Start to observe the opening events.
func (g *Game) RegisterEventHandler(handler events.EventHandler) {
	g.engine.RegisterEventHandler(handler)
}

// Start emits the opening event and begins the first player's turn.
func (g *Game) Start() error {
	if g.started {
		return errors.New("game already started")
	}
	g.started = true

	names := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name
	}
	g.engine.emitEvent(events.GameStarted{
		GameID:  g.ID,
		Players: names,
		Rounds:  g.rounds,
	})

	g.engine.BeginTurn(g.CurrentPlayer(), g.round)
	return nil
}

// Engine exposes the turn engine for issuing player intents.
func (g *Game) Engine() *TurnEngine {
	return g.engine
}

// CurrentPlayer returns the player holding the turn.
func (g *Game) CurrentPlayer() *domain.Player {
	return g.players[g.current]
}

// Players returns the players in seating order.
func (g *Game) Players() []*domain.Player {
	ps := make([]*domain.Player, len(g.players))
	copy(ps, g.players)
	return ps
}

// Round returns the current 1-based round number.
func (g *Game) Round() int {
	return g.round
}

// Rounds returns the total number of rounds in the game.
func (g *Game) Rounds() int {
	return g.rounds
}

// Finished reports whether the final turn of the final round has ended.
func (g *Game) Finished() bool {
	return g.finished
}

// AdvanceTurn moves to the next player once the current turn has ended,
// rolling over into the next round after the last player. After the final
// round the game is marked finished and GameEnded is emitted.
func (g *Game) AdvanceTurn() error {
	if g.finished {
		return nil
	}
	if g.engine.State() != StateTurnEnded {
		return ErrTurnInProgress
	}

	g.current++
	if g.current >= len(g.players) {
		g.current = 0
		g.round++
	}

	if g.round > g.rounds {
		g.finished = true
		scores := make(map[string]int, len(g.players))
		for _, p := range g.players {
			scores[p.Name] = p.Score()
		}
		g.engine.emitEvent(events.GameEnded{
			GameID:      g.ID,
			FinalScores: scores,
		})
		return nil
	}

	g.engine.BeginTurn(g.CurrentPlayer(), g.round)
	return nil
}

// Leaderboard returns the players ordered by banked score, highest first.
func (g *Game) Leaderboard() []*domain.Player {
	board := g.Players()
	domain.SortByScore(board)
	return board
}
