package main

import (
	"context"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// periodicRefresh reseeds a long running board when auto restart is on
const periodicRefresh = 200

var errBadPlacement = errors.New("placement must look like name@row:col")

type renderer interface {
	Display(b *model.Board) error
	Clear() error
}

type game struct {
	config   utils.Config
	strategy model.Strategy
	board    *model.Board
	pool     *model.BoardPool
	history  *model.History
	stats    *utils.Stats
	renderer renderer
	logger   *slog.Logger
	rng      *rand.Rand
}

// parsePlacement parses "glider@1:2"; the offset defaults to 0:0 when omitted
func parsePlacement(arg string) (utils.Placement, error) {
	name, offset, hasOffset := strings.Cut(strings.TrimSpace(arg), "@")
	name = strings.TrimSpace(name)
	p := utils.Placement{Name: name}
	if name == "" {
		return p, errors.Wrapf(errBadPlacement, "[parsePlacement] %q", arg)
	}
	if !hasOffset {
		return p, nil
	}
	rowStr, colStr, ok := strings.Cut(offset, ":")
	if !ok {
		return p, errors.Wrapf(errBadPlacement, "[parsePlacement] %q", arg)
	}
	var err error
	if p.Row, err = strconv.Atoi(strings.TrimSpace(rowStr)); err != nil {
		return p, errors.Wrapf(errBadPlacement, "[parsePlacement] %q: %v", arg, err)
	}
	if p.Col, err = strconv.Atoi(strings.TrimSpace(colStr)); err != nil {
		return p, errors.Wrapf(errBadPlacement, "[parsePlacement] %q: %v", arg, err)
	}
	return p, nil
}

// newGame sets up the initial game state
func newGame(config utils.Config, r renderer, logger *slog.Logger) (*game, error) {
	strategy, err := model.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		strategy: strategy,
		history:  model.NewHistory(model.DefaultHistorySize),
		stats:    utils.NewStats(),
		renderer: r,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
	}
	if config.UseMemoryPool {
		g.pool = model.NewBoardPool()
	}

	if g.board, err = g.seedBoard(); err != nil {
		return nil, err
	}
	logger.Info("game initialised",
		"rows", config.Rows, "cols", config.Cols,
		"strategy", strategy, "pool", config.UseMemoryPool,
		"seed", seed, "living", g.board.CountAlive())
	return g, nil
}

// seedBoard creates a board filled at the configured density with the configured patterns on top
func (g *game) seedBoard() (*model.Board, error) {
	board, err := model.NewBoard(g.config.Rows, g.config.Cols)
	if err != nil {
		return nil, err
	}
	if g.config.RandomDensity > 0 {
		board.Randomize(g.config.RandomDensity, g.rng)
	}
	for _, p := range g.config.Patterns {
		c, err := model.LookupConstruct(p.Name)
		if err != nil {
			return nil, err
		}
		if err = board.Load(c, p.Row, p.Col); err != nil {
			return nil, errors.Wrapf(err, "[seedBoard] pattern %s", p.Name)
		}
	}
	return board, nil
}

// restartReason names why a run would be reseeded; the zero value means keep going
type restartReason string

const (
	reasonExtinction restartReason = "extinction"
	reasonStagnation restartReason = "stagnation detected"
	reasonRefresh    restartReason = "periodic refresh"
)

// settles reports whether the run is over unless auto restart reseeds it
func (r restartReason) settles() bool {
	return r == reasonExtinction || r == reasonStagnation
}

func (g *game) restartCause(living, stagnantCount, generation int) restartReason {
	switch {
	case living == 0:
		return reasonExtinction
	case stagnantCount >= g.config.StagnationThreshold:
		return reasonStagnation
	case generation > 0 && generation%periodicRefresh == 0:
		return reasonRefresh
	}
	return ""
}

// restart replaces the board with a freshly seeded one
func (g *game) restart(reason restartReason, generation int) error {
	board, err := g.seedBoard()
	if err != nil {
		return err
	}
	g.logger.Info("restarting", "reason", reason, "generation", generation, "living", board.CountAlive())
	g.pool.Put(g.board)
	g.board = board
	g.history.Reset()
	return nil
}

// frame renders the current board
func (g *game) frame() {
	if err := g.renderer.Clear(); err != nil {
		g.logger.Warn("clear failed", "error", err)
	}
	if err := g.renderer.Display(g.board); err != nil {
		g.logger.Warn("display failed", "error", err)
	}
}

// run drives generations until ctx is done, the generation limit is hit, or the board settles
func (g *game) run(ctx context.Context) {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)
	defer func() {
		g.logger.Info("simulation finished",
			"generations", generation,
			"runtime", g.stats.Runtime().Round(time.Millisecond),
			"avg_population", g.stats.AveragePopulation)
	}()

	for {
		frameStart := time.Now()
		g.frame()

		living := g.board.CountAlive()
		g.stats.Update(generation, living, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		if g.history.IsStagnant(g.board) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		g.history.Record(g.board)

		g.logger.Debug("generation",
			"n", generation, "living", living,
			"bounding_box", g.board.BoundingBoxSize(),
			"since_restart", generation-lastRestartGen,
			"gen_per_sec", g.stats.GenerationsPerSecond)

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			g.logger.Info("reached generation limit", "limit", g.config.MaxGenerations)
			return
		}

		reason := g.restartCause(living, stagnantCount, generation)
		switch {
		case reason != "" && g.config.AutoRestart:
			if err := g.restart(reason, generation); err != nil {
				g.logger.Error("restart failed", "error", err)
				return
			}
			lastRestartGen = generation
			stagnantCount = 0
		case reason.settles():
			g.logger.Info("board settled", "reason", reason, "generation", generation)
			return
		case g.config.AutoRestart && stagnantCount >= 2:
			// Inject some life to try to break the stagnation
			g.board.InjectRandomLife(g.config.InjectionCount, g.rng)
		}

		next := g.board.NextGeneration(g.strategy, g.config.Workers, g.pool)
		g.pool.Put(g.board)
		g.board = next
		generation++

		select {
		case <-ctx.Done():
			g.logger.Info("shutting down", "cause", context.Cause(ctx))
			return
		case <-time.After(g.config.FrameRate.Std()):
		}
	}
}
