package cli

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicepool/farkle/domain"
)

func playerWithScore(t *testing.T, name string, score int) *domain.Player {
	t.Helper()

	player := domain.NewPlayer(name)
	if score > 0 {
		sel, err := domain.NewSelection([]int{1}, score)
		require.NoError(t, err)
		player.AddSelection(sel)
		player.Bank()
	}
	return player
}

func TestWriteScores(t *testing.T) {
	players := []*domain.Player{
		playerWithScore(t, "Bob", 2000),
		playerWithScore(t, "Alice", 500),
	}

	var out bytes.Buffer
	WriteScores(&out, players, time.Date(2025, 6, 1, 20, 30, 0, 0, time.UTC))

	assert.Equal(t, "2025-06-01 20:30:00\nBob - 2000\nAlice - 500\n", out.String())
}

func TestSaveScoresToStdoutWhenFilenameEmpty(t *testing.T) {
	players := []*domain.Player{playerWithScore(t, "Alice", 500)}

	in := bufio.NewScanner(strings.NewReader("\n"))
	var out bytes.Buffer

	require.NoError(t, SaveScores(in, &out, players))
	assert.Contains(t, out.String(), "Alice - 500")
}

func TestSaveScoresToFileSortedByScore(t *testing.T) {
	players := []*domain.Player{
		playerWithScore(t, "Alice", 500),
		playerWithScore(t, "Bob", 2000),
	}

	path := filepath.Join(t.TempDir(), "scores.txt")
	in := bufio.NewScanner(strings.NewReader(path + "\n"))
	var out bytes.Buffer

	require.NoError(t, SaveScores(in, &out, players))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Bob - 2000", lines[1])
	assert.Equal(t, "Alice - 500", lines[2])
}
