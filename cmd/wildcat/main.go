package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/fadedpez/wildcatblackjack/internal/config"
	"github.com/fadedpez/wildcatblackjack/internal/console"
	"github.com/fadedpez/wildcatblackjack/internal/discord"
	"github.com/fadedpez/wildcatblackjack/internal/logging"
	"github.com/fadedpez/wildcatblackjack/internal/randutil"
	"github.com/fadedpez/wildcatblackjack/pkg/repositories/highscore"
	"github.com/fadedpez/wildcatblackjack/pkg/services/orchestrator"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command. Empty values keep what the
// config file and environment say.
type Globals struct {
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	Storage  string `help:"High score storage (file, memory, sqlite, redis, elasticsearch, postgres)"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Play      PlayCmd          `cmd:"" default:"withargs" help:"Play Wildcat Blackjack at the terminal"`
	Highscore HighScoreCmd     `cmd:"" help:"Show the stored high score"`
	Migrate   MigrateCmd       `cmd:"" help:"Apply SQLite high score migrations"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wildcat"),
		kong.Description("Wildcat Blackjack for up to four players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads configuration, applies flag overrides and builds the logger
func (g *Globals) setup() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if g.Storage != "" {
		cfg.StorageType = g.Storage
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewLogger(os.Stderr, level), nil
}

// PlayCmd runs games until the table decides to stop
type PlayCmd struct {
	Seed int64 `help:"Deterministic shuffle seed (0 seeds from the clock)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := highscore.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("error opening high score storage: %w", err)
	}
	defer store.Close()
	logger.Debug("using %s high score storage", cfg.StorageType)

	reporters := orchestrator.MultiReporter{console.NewReporter(os.Stdout)}

	var discordReporter *discord.Reporter
	if cfg.DiscordEnabled() {
		session, err := discord.NewSession(cfg.DiscordToken)
		if err != nil {
			return fmt.Errorf("error creating discord session: %w", err)
		}
		if err := session.Open(); err != nil {
			return fmt.Errorf("error opening discord session: %w", err)
		}
		defer session.Close()

		discordReporter = discord.NewReporter(session, cfg.DiscordChannelID, logger)
		reporters = append(reporters, discordReporter)
		logger.Info("posting results to discord channel %s", cfg.DiscordChannelID)
	}

	seed := cfg.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	rng := randutil.FromSeed(seed)

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	for {
		setup, err := prompter.ReadSetup()
		if err != nil {
			return err
		}

		svc, err := orchestrator.New(orchestrator.Config{
			Mode:    setup.Mode,
			Rounds:  setup.Rounds,
			Players: setup.Players,
		}, prompter, store,
			orchestrator.WithRand(rng),
			orchestrator.WithReporter(reporters),
			orchestrator.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		if _, err := svc.Run(ctx); err != nil {
			if discordReporter != nil {
				discordReporter.ReportError(err)
			}
			return err
		}

		again, err := prompter.Confirm("\nPlay again?")
		if err != nil || !again {
			fmt.Println("Thanks for playing Wildcat Blackjack!")
			return nil
		}
	}
}

// HighScoreCmd prints the stored record
type HighScoreCmd struct{}

func (c *HighScoreCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := highscore.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("error opening high score storage: %w", err)
	}
	defer store.Close()

	record, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if record.IsZero() {
		fmt.Println("No high score yet.")
		return nil
	}
	fmt.Printf("High score: %s with %d points\n", record.Name, record.Score)
	return nil
}

// MigrateCmd applies the embedded SQLite migrations and lists them
type MigrateCmd struct {
	DB string `help:"Path to the SQLite database (defaults to the configured sqlite_path)"`
}

func (c *MigrateCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	dbPath := cfg.SQLitePath
	if c.DB != "" {
		dbPath = c.DB
	}

	repo, err := highscore.NewSQLiteRepository(dbPath, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	applied, err := repo.AppliedMigrations()
	if err != nil {
		return err
	}
	fmt.Printf("%s is up to date (%d migrations)\n", dbPath, len(applied))
	for _, name := range applied {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
