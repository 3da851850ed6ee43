package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const version = "0.2.0"

// cliOptions holds flag values. Zero values keep the config file's value
// unless the flag's long name is in given.
type cliOptions struct {
	configPath  string
	rows        int
	cols        int
	generations int
	interval    time.Duration
	strategy    string
	workers     int
	patterns    []string
	density     float64
	seed        int64
	plain       bool
	restart     bool
	logLevel    string
	given       map[string]bool
}

// isSet reports whether the flag with this long name was on the command line
func (o cliOptions) isSet(long string) bool {
	return o.given[long]
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions

	p := flaggy.NewParser("go-life")
	p.Description = "Conway's Game of Life on a fixed board with dead edges"
	p.Version = version
	p.ShowHelpOnUnexpected = true

	p.String(&opts.configPath, "c", "config", "Path to a .json or .yaml config file")
	p.Int(&opts.rows, "r", "rows", "Board rows")
	p.Int(&opts.cols, "k", "cols", "Board columns")
	p.Int(&opts.generations, "g", "generations", "Stop after this many generations")
	p.Duration(&opts.interval, "i", "interval", "Delay between generations, for example 150ms")
	p.String(&opts.strategy, "s", "strategy", "Next generation strategy [sequential|parallel|bounded]")
	p.Int(&opts.workers, "w", "workers", "Workers for the parallel strategy (0 = one per CPU)")
	p.StringSlice(&opts.patterns, "p", "pattern", "Place a construct as name@row:col ["+strings.Join(model.ConstructNames(), "|")+"]")
	p.Float64(&opts.density, "d", "density", "Random fill density in [0, 1]")
	p.Int64(&opts.seed, "", "seed", "Random seed (0 = time based)")
	p.Bool(&opts.plain, "", "plain", "Disable colours")
	p.Bool(&opts.restart, "", "restart", "Reseed the board on extinction or stagnation")
	p.String(&opts.logLevel, "", "log-level", "Log level [debug|info|warn|error]")

	if err := p.ParseArgs(args); err != nil {
		return opts, err
	}

	opts.given = make(map[string]bool)
	for _, v := range p.ParsedValues {
		if v.IsPositional {
			continue
		}
		// --key=value is recorded with its value attached
		name, _, _ := strings.Cut(v.Key, "=")
		for _, f := range p.Flags {
			if f.HasName(name) {
				opts.given[f.LongName] = true
			}
		}
	}
	return opts, nil
}

// resolveConfig loads the config file, if any, and applies flag overrides
func resolveConfig(opts cliOptions) (utils.Config, error) {
	config := utils.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if config, err = utils.LoadConfig(opts.configPath); err != nil {
			return config, err
		}
	}

	if opts.rows != 0 {
		config.Rows = opts.rows
	}
	if opts.cols != 0 {
		config.Cols = opts.cols
	}
	if opts.generations != 0 || opts.isSet("generations") {
		config.MaxGenerations = opts.generations
	}
	if opts.interval != 0 {
		config.FrameRate = utils.Duration(opts.interval)
	}
	if opts.strategy != "" {
		config.Strategy = opts.strategy
	}
	if opts.workers != 0 || opts.isSet("workers") {
		config.Workers = opts.workers
	}
	if opts.density != 0 || opts.isSet("density") {
		config.RandomDensity = opts.density
	}
	if opts.seed != 0 || opts.isSet("seed") {
		config.Seed = opts.seed
	}
	if opts.plain {
		config.Plain = true
	}
	if opts.restart {
		config.AutoRestart = true
	}
	if opts.logLevel != "" {
		config.LogLevel = opts.logLevel
	}
	for _, arg := range opts.patterns {
		placement, err := parsePlacement(arg)
		if err != nil {
			return config, err
		}
		config.Patterns = append(config.Patterns, placement)
	}

	return config, config.Validate()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	config, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	logger := utils.NewLogger(config.LogLevel, config.LogFormat, os.Stderr)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game, err := newGame(config, model.NewTerminalRenderer(os.Stdout, config.Plain), logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}

	game.run(ctx)
}
