package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicepool/farkle/domain"
	"github.com/dicepool/farkle/events"
)

// scriptedRoller replays a fixed sequence of faces, cycling when exhausted.
type scriptedRoller struct {
	faces []int
	next  int
}

func (r *scriptedRoller) NextFace() int {
	face := r.faces[r.next%len(r.faces)]
	r.next++
	return face
}

func newTestEngine(t *testing.T, faces ...int) (*TurnEngine, *domain.Player, *events.InMemoryEventStore) {
	t.Helper()

	store := events.NewInMemoryEventStore()
	engine := NewTurnEngine("game-1", &scriptedRoller{faces: faces}, store)
	player := domain.NewPlayer("Alice")
	engine.BeginTurn(player, 1)
	return engine, player, store
}

func eventNames(t *testing.T, store *events.InMemoryEventStore) []string {
	t.Helper()

	stored, err := store.LoadEvents("game-1")
	require.NoError(t, err)
	names := make([]string, len(stored))
	for i, e := range stored {
		names[i] = e.EventName()
	}
	return names
}

func TestFullTurnRollPickConfirmBank(t *testing.T) {
	engine, player, store := newTestEngine(t, 1, 1, 1, 2, 2, 2)
	assert.Equal(t, StateFirstRoll, engine.State())

	outcome, err := engine.Roll()
	require.NoError(t, err)
	assert.Equal(t, domain.RollTypeSimple, outcome.Type)
	assert.Equal(t, StatePicking, engine.State())

	for i := 0; i < domain.PoolSize; i++ {
		result, err := engine.Toggle(i)
		require.NoError(t, err)
		assert.Equal(t, domain.TogglePicked, result)
	}

	selection, err := engine.ConfirmPick()
	require.NoError(t, err)
	assert.Equal(t, 1200, selection.Value())
	assert.Equal(t, StateRolling, engine.State())

	banked, err := engine.Bank()
	require.NoError(t, err)
	assert.Equal(t, 1200, banked)
	assert.Equal(t, 1200, player.Score())
	assert.Empty(t, player.Hand())
	assert.Equal(t, StateTurnEnded, engine.State())

	assert.Equal(t, []string{
		"TURN_STARTED",
		"DICE_ROLLED",
		"SELECTION_CONFIRMED",
		"POINTS_BANKED",
	}, eventNames(t, store))
}

func TestRollRejectedWhilePicking(t *testing.T) {
	engine, _, _ := newTestEngine(t, 1, 1, 1, 2, 2, 2)

	_, err := engine.Roll()
	require.NoError(t, err)

	_, err = engine.Roll()
	assert.ErrorIs(t, err, ErrMustPickFirst)
	assert.Equal(t, StatePicking, engine.State())
}

func TestBankRejectedBeforeAnyConfirm(t *testing.T) {
	engine, _, _ := newTestEngine(t, 1, 1, 1, 2, 2, 2)

	_, err := engine.Bank()
	assert.ErrorIs(t, err, ErrNothingToBank)

	_, err = engine.Roll()
	require.NoError(t, err)

	_, err = engine.Bank()
	assert.ErrorIs(t, err, ErrNothingToBank)
}

func TestFarkleDiscardsHandAndEndsTurn(t *testing.T) {
	engine, player, store := newTestEngine(t, 1, 1, 1, 2, 2, 2, 2, 3, 4)

	_, err := engine.Roll()
	require.NoError(t, err)
	for _, i := range []int{0, 1, 2} {
		_, err := engine.Toggle(i)
		require.NoError(t, err)
	}
	selection, err := engine.ConfirmPick()
	require.NoError(t, err)
	assert.Equal(t, 1000, selection.Value())

	// Re-roll the three free dice into 2, 3, 4: nothing pickable
	outcome, err := engine.Roll()
	require.NoError(t, err)
	assert.Equal(t, domain.RollTypeFarkle, outcome.Type)
	assert.Equal(t, StateTurnEnded, engine.State())
	assert.Empty(t, player.Hand())
	assert.Zero(t, player.Score())

	assert.Contains(t, eventNames(t, store), "FARKLED")
	stored, err := store.LoadEvents("game-1")
	require.NoError(t, err)
	for _, e := range stored {
		if farkled, ok := e.(events.Farkled); ok {
			assert.Equal(t, 1000, farkled.PointsLost)
		}
	}
}

func TestStraightKeepsStateAndGrantsHotDice(t *testing.T) {
	engine, player, store := newTestEngine(t,
		1, 2, 3, 4, 5, 6, // straight
		1, 1, 1, 5, 5, 5, // after hot dice reset
	)

	outcome, err := engine.Roll()
	require.NoError(t, err)
	assert.Equal(t, domain.RollTypeStraight, outcome.Type)
	assert.Equal(t, domain.StraightValue, outcome.Selection.Value())
	// State unchanged: the whole pool is locked, not banked
	assert.Equal(t, StateFirstRoll, engine.State())
	assert.Equal(t, 3000, player.HandTotal())

	// Banking is not available until a pick is confirmed
	_, err = engine.Bank()
	assert.ErrorIs(t, err, ErrNothingToBank)

	// The next roll goes through the hot dice reset and keeps the hand
	outcome, err = engine.Roll()
	require.NoError(t, err)
	assert.True(t, outcome.HotDice)
	assert.Equal(t, domain.RollTypeSimple, outcome.Type)
	assert.Equal(t, 3000, player.HandTotal())
	assert.Contains(t, eventNames(t, store), "HOT_DICE")

	for i := 0; i < domain.PoolSize; i++ {
		_, err := engine.Toggle(i)
		require.NoError(t, err)
	}
	selection, err := engine.ConfirmPick()
	require.NoError(t, err)
	assert.Equal(t, 1500, selection.Value())

	banked, err := engine.Bank()
	require.NoError(t, err)
	assert.Equal(t, 4500, banked)
	assert.Equal(t, 4500, player.Score())
}

func TestTriplePairScoresAllSixDice(t *testing.T) {
	engine, player, _ := newTestEngine(t, 2, 2, 3, 3, 5, 5)

	outcome, err := engine.Roll()
	require.NoError(t, err)
	assert.Equal(t, domain.RollTypeTriplePair, outcome.Type)
	assert.Equal(t, domain.TriplePairValue, outcome.Selection.Value())
	assert.Equal(t, StateFirstRoll, engine.State())
	assert.Equal(t, 2000, player.HandTotal())
}

func TestUndoPickReturnsToThePickingPass(t *testing.T) {
	engine, player, store := newTestEngine(t, 1, 1, 1, 2, 2, 2)

	_, err := engine.Roll()
	require.NoError(t, err)
	for _, i := range []int{0, 1, 2} {
		_, err := engine.Toggle(i)
		require.NoError(t, err)
	}
	_, err = engine.ConfirmPick()
	require.NoError(t, err)

	selection, err := engine.UndoPick()
	require.NoError(t, err)
	assert.Equal(t, 1000, selection.Value())
	assert.Equal(t, StatePicking, engine.State())
	assert.Empty(t, player.Hand())
	assert.Contains(t, eventNames(t, store), "SELECTION_UNDONE")

	// The dice are free to pick again, differently this time
	result, err := engine.Toggle(0)
	require.NoError(t, err)
	assert.Equal(t, domain.TogglePicked, result)

	selection, err = engine.ConfirmPick()
	require.NoError(t, err)
	assert.Equal(t, 100, selection.Value())
}

func TestUndoPickRejectedOutsideRolling(t *testing.T) {
	engine, _, _ := newTestEngine(t, 1, 1, 1, 2, 2, 2)

	_, err := engine.UndoPick()
	assert.ErrorIs(t, err, ErrNothingToUndo)

	_, err = engine.Roll()
	require.NoError(t, err)

	_, err = engine.UndoPick()
	assert.ErrorIs(t, err, ErrNothingToUndo)
}

func TestConfirmInvalidSelectionAutoDeselects(t *testing.T) {
	engine, _, _ := newTestEngine(t, 4, 4, 4, 1, 2, 3)

	_, err := engine.Roll()
	require.NoError(t, err)

	// Two of the three 4s: a partial set
	for _, i := range []int{0, 1} {
		result, err := engine.Toggle(i)
		require.NoError(t, err)
		require.Equal(t, domain.TogglePicked, result)
	}

	_, err = engine.ConfirmPick()
	assert.ErrorIs(t, err, domain.ErrPartialSet)
	assert.Equal(t, StatePicking, engine.State())

	// The toggle pass was reverted
	for _, d := range engine.Dice() {
		assert.False(t, d.Pending())
	}
}

func TestConfirmEmptySelectionRejected(t *testing.T) {
	engine, _, _ := newTestEngine(t, 1, 1, 1, 2, 2, 2)

	_, err := engine.Roll()
	require.NoError(t, err)

	_, err = engine.ConfirmPick()
	assert.ErrorIs(t, err, domain.ErrWorthlessSelection)
	assert.Equal(t, StatePicking, engine.State())
}

func TestIntentsRejectedAfterTurnEnded(t *testing.T) {
	engine, _, _ := newTestEngine(t, 2, 3, 2, 3, 4, 6)

	outcome, err := engine.Roll()
	require.NoError(t, err)
	require.Equal(t, domain.RollTypeFarkle, outcome.Type)

	_, err = engine.Roll()
	assert.ErrorIs(t, err, ErrTurnEnded)
	_, err = engine.Toggle(0)
	assert.ErrorIs(t, err, ErrTurnEnded)
	_, err = engine.ConfirmPick()
	assert.ErrorIs(t, err, ErrTurnEnded)
	_, err = engine.Bank()
	assert.ErrorIs(t, err, ErrTurnEnded)
	_, err = engine.UndoPick()
	assert.ErrorIs(t, err, ErrTurnEnded)
}

func TestTogglePanicsOnOutOfRangeIndex(t *testing.T) {
	engine, _, _ := newTestEngine(t, 1, 1, 1, 2, 2, 2)

	_, err := engine.Roll()
	require.NoError(t, err)

	assert.Panics(t, func() { engine.Toggle(6) })
}
