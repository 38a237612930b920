package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
	"golang.org/x/exp/rand"
)

func main() {
	config.SetLogLevel()

	blackDepth := flag.Int("black-depth", 4, "search depth of the black engine")
	whiteDepth := flag.Int("white-depth", 4, "search depth of the white engine")
	games := flag.Int("games", 1, "number of games to play")
	randomDiscs := flag.Int("random-discs", 4, "play random moves until this many discs are on the board")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for the random opening moves")
	store := flag.Bool("store", false, "store the games in postgres")
	flag.Parse()

	black, err := engine.New(*blackDepth)
	if err != nil {
		slog.Error("Invalid black depth", "error", err)
		os.Exit(1)
	}

	white, err := engine.New(*whiteDepth)
	if err != nil {
		slog.Error("Invalid white depth", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var repo *repository.GameRepository
	if *store {
		cfg := config.LoadDatabaseConfig()

		postgres, err := services.InitPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			slog.Error("Failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer postgres.Close()

		repo = repository.NewGameRepositoryFromServices(&services.Services{Postgres: postgres})
		if err = repo.CreateSchema(ctx); err != nil {
			slog.Error("Failed to create schema", "error", err)
			os.Exit(1)
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	outcomes := make(map[string]int)
	var total engine.Stats

	slog.Info("Starting self-play", "black_depth", *blackDepth, "white_depth", *whiteDepth, "games", *games, "seed", *seed)

	for i := range *games {
		start, err := othello.NewGameRandom(rng, *randomDiscs)
		if err != nil {
			slog.Error("Failed to create start position", "error", err)
			os.Exit(1)
		}

		record, err := match.Play(ctx, black, white, start)
		if err != nil {
			slog.Error("Match failed", "game", i+1, "error", err)
			os.Exit(1)
		}

		outcomes[record.Outcome()]++
		total.Add(record.Stats)

		slog.Info("Completed game",
			"game", i+1,
			"start", record.Start,
			"outcome", record.Outcome(),
			"white_discs", record.WhiteDiscs,
			"black_discs", record.BlackDiscs,
			"nodes", record.Stats.Nodes,
			"duration", record.Stats.Duration,
		)

		if repo != nil {
			game, err := repo.SaveGame(ctx, models.NewGameRecord(record))
			if err != nil {
				slog.Error("Failed to store game", "error", err)
				os.Exit(1)
			}
			slog.Info("Stored game", "id", game.ID)
		}
	}

	slog.Info("Completed self-play",
		"black_wins", outcomes["black"],
		"white_wins", outcomes["white"],
		"draws", outcomes["draw"],
		"nodes", total.Nodes,
		"duration", total.Duration,
		"nodes_per_second", int64(total.NodesPerSecond()),
	)
}
