// Command nlthctl is a thin collaborator around the engine: it wires
// configuration, logging, and a concurrent self-play demonstration
// together for manual inspection. None of this package is imported by
// the core (poker, action, abstraction, nlth).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/floriskappen/nlth-engine/action"
	"github.com/floriskappen/nlth-engine/envconfig"
	"github.com/floriskappen/nlth-engine/internal/randutil"
	"github.com/floriskappen/nlth-engine/nlth"
)

type cli struct {
	Bench benchCmd `cmd:"" help:"Run concurrent self-play rollouts, each owning its own state."`
	Deal  dealCmd  `cmd:"" help:"Deal and print a single hand to its first decision point."`
}

type benchCmd struct {
	Env      string `help:"Path to an HCL environment file." optional:""`
	Rollouts int    `short:"n" help:"Number of independent rollouts to run concurrently." default:"100"`
	Players  int    `short:"p" help:"Players per rollout." default:"6"`
	Seed     uint64 `help:"Base seed; rollout i uses Seed+i." default:"1"`
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"info"`
}

type dealCmd struct {
	Players  int    `short:"p" help:"Players at the table." default:"6"`
	Seed     uint64 `help:"Deal seed." default:"1"`
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"info"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c, kong.Name("nlthctl"), kong.Description("Inspect the NLTH game-state engine."))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newLogger(level string) *log.Logger {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "nlthctl",
		Level:           parsed,
	})
}

// Run executes N independent self-play rollouts concurrently. Each
// goroutine owns its own nlth.State and its own seeded RNG; the only
// shared state is the results slice, where each goroutine writes its own
// index, demonstrating the concurrency model the core guarantees but
// never itself implements.
func (b *benchCmd) Run() error {
	logger := newLogger(b.LogLevel)

	var env envconfig.Environment
	if b.Env != "" {
		loaded, err := envconfig.Load(b.Env)
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		env = loaded
	}
	logger.Debug("loaded environment", "translation_enabled", env.EnableTranslation)

	g, gctx := errgroup.WithContext(context.Background())
	results := make([]int32, b.Rollouts)

	for i := 0; i < b.Rollouts; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			seed := b.Seed + uint64(i)
			payoff := rollout(b.Players, seed)
			results[i] = payoff
			return nil
		})
	}

	start := time.Now()
	if err := g.Wait(); err != nil {
		return fmt.Errorf("rollout failed: %w", err)
	}

	var total int64
	for _, r := range results {
		total += int64(r)
	}
	logger.Info("rollouts complete",
		"count", b.Rollouts,
		"elapsed", time.Since(start),
		"seat0_avg_payoff", float64(total)/float64(b.Rollouts),
	)
	return nil
}

// rollout has every seat pick uniformly at random among its legal
// Fold/Call/AllIn actions until the hand terminates, returning seat 0's
// payoff. It exists purely
// to exercise HandleAction repeatedly under real concurrency, not to
// demonstrate strategy.
func rollout(players int, seed uint64) int32 {
	s := nlth.NewEmpty(players, true, &seed)
	rng := randutil.New(int64(seed))

	for !s.IsTerminal() {
		legal := s.ActivePlayerActions([]action.Action{
			action.NewFold(), action.NewCall(), action.NewAllIn(),
		})
		if len(legal) == 0 {
			break
		}
		choice := legal[rng.IntN(len(legal))]
		s = s.HandleAction(choice)
	}
	return s.Payoffs()[0]
}

// Run deals a single hand and prints its state at the first decision
// point, for manual inspection of the card encoding and blind posting.
func (d *dealCmd) Run() error {
	logger := newLogger(d.LogLevel)
	seed := d.Seed
	s := nlth.NewEmpty(d.Players, true, &seed)

	logger.Info("hand dealt",
		"players", s.PlayerCount(),
		"hands", s.PrivateHands[:s.Players],
		"board", s.CommunityCards,
		"active_player", s.ActivePlayer(),
		"call_amount", s.CallAmount(),
		"total_pot", s.TotalPot(),
	)
	return nil
}
