package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dicepool/farkle/domain"
)

// WriteScores writes a timestamp followed by one "name - score" line per
// player. Callers pass players already ordered for the leaderboard.
func WriteScores(out io.Writer, players []*domain.Player, now time.Time) {
	fmt.Fprintln(out, now.Format("2006-01-02 15:04:05"))
	for _, player := range players {
		fmt.Fprintf(out, "%s - %d\n", player.Name, player.Score())
	}
}

// SaveScores prompts for a filename and writes the final scores to it. An
// empty filename prints the scores to out instead.
func SaveScores(in *bufio.Scanner, out io.Writer, players []*domain.Player) error {
	domain.SortByScore(players)

	fmt.Fprint(out, "Enter filename for scores (empty to print): ")
	filename := ""
	if in.Scan() {
		filename = strings.TrimSpace(in.Text())
	}

	if filename == "" {
		WriteScores(out, players, time.Now())
		return nil
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create score file: %w", err)
	}
	defer file.Close()

	WriteScores(file, players, time.Now())
	return nil
}
