package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/fadedpez/carddeal/internal/config"
	"github.com/fadedpez/carddeal/internal/logging"
	"github.com/fadedpez/carddeal/pkg/display"
	"github.com/fadedpez/carddeal/pkg/repositories/round"
	"github.com/fadedpez/carddeal/pkg/services/deal"
)

// defaultPlayerCount is the number of seats dealt to
const defaultPlayerCount = 4

// CLI holds the optional flags. Running with none reproduces the default deal.
type CLI struct {
	EnvFile  string `short:"e" long:"env-file" default:".env" help:"Optional env file with DEAL_LOG_LEVEL, DEAL_SHUFFLE_MODE and DEAL_SHUFFLE_SEED"`
	LogLevel string `short:"l" long:"log-level" help:"Log level (overrides env)"`
	Seed     *int64 `short:"s" long:"seed" help:"Shuffle seed for a reproducible deal (overrides env)"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("deal"),
		kong.Description("Shuffle a 52-card deck and deal it round-robin to the table."),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := run(context.Background(), cli, quartz.NewReal(), os.Stdout, os.Stderr, defaultPlayerCount); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
}

func run(ctx context.Context, cli CLI, clock quartz.Clock, stdout, stderr io.Writer, playerCount int) error {
	cfg := config.Load(cli.EnvFile)
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Seed != nil {
		cfg.SetSeed(*cli.Seed)
	}

	format := logging.TextFormat
	if !cfg.IsDevelopment() {
		format = logging.JSONFormat
	}
	logger := logging.NewLoggerWithFormat(stderr, logging.ParseLevel(cfg.LogLevel), format)
	for _, warning := range cfg.Warnings {
		logger.Warn("%v", warning)
	}
	if cfg.ShuffleMode == config.ShuffleUniform {
		logger.Warn("%s=uniform: using Fisher-Yates instead of the classic full-range swap", config.KeyShuffleMode)
	}

	repo := round.NewMemoryRepository()
	defer repo.Close()

	service := deal.NewService(repo, clock, logger, deal.Options{
		ShuffleMode: cfg.ShuffleMode,
		Seed:        cfg.Seed,
		HasSeed:     cfg.HasSeed,
	})

	dealt, err := service.Run(ctx, playerCount)
	if err != nil {
		logger.LogError(err)
		return err
	}

	r, err := repo.GetRound(ctx, dealt.ID)
	if err != nil {
		logger.LogError(err)
		return err
	}
	if rounds, err := repo.ListRounds(ctx); err == nil {
		logger.Debug("Round %s recorded, %d round(s) this run", r.ID, len(rounds))
	}

	return display.NewPrinter(stdout).PrintRound(r, deal.NoPlayersMessage)
}
