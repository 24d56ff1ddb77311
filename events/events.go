package events

// Game structure events

// GameStarted is emitted once when a game begins.
type GameStarted struct {
	GameID  string
	Players []string
	Rounds  int
}

func (e GameStarted) EventName() string { return "GAME_STARTED" }

// TurnStarted is emitted when a player receives a fresh pool of dice.
type TurnStarted struct {
	GameID     string
	PlayerID   string
	PlayerName string
	Round      int
}

func (e TurnStarted) EventName() string { return "TURN_STARTED" }

// GameEnded is emitted after the final turn of the final round.
type GameEnded struct {
	GameID      string
	FinalScores map[string]int // player name -> banked score
}

func (e GameEnded) EventName() string { return "GAME_ENDED" }

// Player action events

// DiceRolled is emitted for every sub-roll, after classification.
type DiceRolled struct {
	GameID   string
	PlayerID string
	Values   []int
	RollType string
}

func (e DiceRolled) EventName() string { return "DICE_ROLLED" }

// HotDice is emitted when an exhausted pool is replaced by six fresh dice
// within the same turn.
type HotDice struct {
	GameID   string
	PlayerID string
}

func (e HotDice) EventName() string { return "HOT_DICE" }

// Farkled is emitted when a roll yields nothing pickable. PointsLost is the
// hand total discarded with the bust.
type Farkled struct {
	GameID     string
	PlayerID   string
	PointsLost int
}

func (e Farkled) EventName() string { return "FARKLED" }

// SelectionConfirmed is emitted when a pick is scored into the hand, whether
// confirmed manually or matched automatically by a whole-roll pattern.
type SelectionConfirmed struct {
	GameID   string
	PlayerID string
	Values   []int
	Points   int
}

func (e SelectionConfirmed) EventName() string { return "SELECTION_CONFIRMED" }

// SelectionUndone is emitted when the most recent confirmed selection is
// reverted back into a picking pass.
type SelectionUndone struct {
	GameID   string
	PlayerID string
	Values   []int
	Points   int
}

func (e SelectionUndone) EventName() string { return "SELECTION_UNDONE" }

// PointsBanked is emitted when a player banks their hand, ending the turn.
type PointsBanked struct {
	GameID   string
	PlayerID string
	Points   int
	NewScore int
}

func (e PointsBanked) EventName() string { return "POINTS_BANKED" }
