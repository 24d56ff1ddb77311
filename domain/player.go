package domain

import (
	"sort"

	"github.com/google/uuid"
)

// Player accumulates unbanked selections during a turn and a permanently
// banked score across turns. The hand and score are only mutated through
// AddSelection, UndoSelection, EmptyHand and Bank.
type Player struct {
	ID   string
	Name string

	score int
	hand  []Selection
}

// NewPlayer creates a player with the given display name.
func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// Score returns the player's banked score. It never decreases.
func (p *Player) Score() int {
	return p.score
}

// Hand returns a snapshot of the unbanked selections for the current turn.
func (p *Player) Hand() []Selection {
	hand := make([]Selection, len(p.hand))
	copy(hand, p.hand)
	return hand
}

// HandTotal returns the points currently held in hand.
func (p *Player) HandTotal() int {
	total := 0
	for _, sel := range p.hand {
		total += sel.Value()
	}
	return total
}

// AddSelection pushes a confirmed selection onto the hand.
func (p *Player) AddSelection(sel Selection) {
	p.hand = append(p.hand, sel)
}

// UndoSelection pops the most recently added selection, supporting unpick
// after confirm. The second return is false when the hand is empty.
func (p *Player) UndoSelection() (Selection, bool) {
	if len(p.hand) == 0 {
		return Selection{}, false
	}
	last := p.hand[len(p.hand)-1]
	p.hand = p.hand[:len(p.hand)-1]
	return last, true
}

// EmptyHand discards the hand without banking. Used on a farkle.
func (p *Player) EmptyHand() {
	p.hand = nil
}

// Bank moves the hand total into the permanent score, empties the hand and
// returns the banked amount for display.
func (p *Player) Bank() int {
	banked := p.HandTotal()
	p.score += banked
	p.hand = nil
	return banked
}

// SortByScore orders players by banked score, highest first, for the
// leaderboard. Equal scores keep their relative order.
func SortByScore(players []*Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score() > players[j].Score()
	})
}
