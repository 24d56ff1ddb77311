package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dicepool/farkle/dice"
	"github.com/dicepool/farkle/domain"
)

// renderRoll prints the pool with die numbers 1-6 above the faces. Dice
// locked from earlier picks show as "-", dice toggled in the current pass
// are parenthesised.
func renderRoll(out io.Writer, pool [domain.PoolSize]dice.Die) {
	fmt.Fprintln(out, "Your roll:")

	var header, faces []string
	for i, d := range pool {
		header = append(header, fmt.Sprintf("%3d", i+1))
		switch d.State {
		case dice.StateLockedPrior:
			faces = append(faces, fmt.Sprintf("%3s", "-"))
		case dice.StatePendingPick:
			faces = append(faces, fmt.Sprintf("(%d)", d.Value))
		default:
			faces = append(faces, fmt.Sprintf("%3d", d.Value))
		}
	}

	fmt.Fprintln(out, strings.Join(header, " "))
	fmt.Fprintln(out, strings.Repeat("-", 4*domain.PoolSize-1))
	fmt.Fprintln(out, strings.Join(faces, " "))
}

// renderHand prints the unbanked selections and their running total.
func renderHand(out io.Writer, player *domain.Player) {
	hand := player.Hand()
	if len(hand) == 0 {
		fmt.Fprintln(out, "Your hand is empty.")
		return
	}

	fmt.Fprintln(out, "Your selections:")
	for _, sel := range hand {
		values := make([]string, len(sel.Values()))
		for i, v := range sel.Values() {
			values[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(out, "  %s (%d points)\n", strings.Join(values, " "), sel.Value())
	}
	fmt.Fprintf(out, "%d points in hand.\n", player.HandTotal())
}
