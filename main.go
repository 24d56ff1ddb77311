package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dicepool/farkle/cli"
	"github.com/dicepool/farkle/dice"
	"github.com/dicepool/farkle/events"
	"github.com/dicepool/farkle/game"
)

type config struct {
	Players int   `env:"FARKLE_PLAYERS" envDefault:"2"`
	Rounds  int   `env:"FARKLE_ROUNDS" envDefault:"10"`
	Seed    int64 `env:"FARKLE_SEED" envDefault:"0"`
	Debug   bool  `env:"FARKLE_DEBUG" envDefault:"false"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}

	flag.IntVar(&cfg.Players, "players", cfg.Players, "player count")
	flag.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "round count")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "dice seed, 0 for random")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging and event dumps")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	roller := dice.NewRandomRoller()
	if cfg.Seed != 0 {
		roller = dice.NewSeededRoller(cfg.Seed)
	}

	fmt.Println("Welcome to Farkle!")

	stdin := bufio.NewScanner(os.Stdin)
	names := cli.PromptPlayerNames(stdin, os.Stdout, cfg.Players)

	g, err := game.New(names, cfg.Rounds, roller, events.NewInMemoryEventStore())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	session := cli.NewSession(g, stdin, os.Stdout, cfg.Debug)
	if err := session.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	if err := cli.SaveScores(stdin, os.Stdout, g.Players()); err != nil {
		log.Error().Err(err).Msg("failed to save scores")
	}
}
