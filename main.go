package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-env/model"
	"github.com/sheikhrachel/go-gol-env/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	out := os.Stdout
	config, err := parseConfig(out, args)
	if err != nil {
		return err
	}

	grid, stats, err := initializeGame(config)
	if err != nil {
		return err
	}
	rng := newInjectionRNG(config.Seed)
	renderer := model.NewTerminalRenderer()
	displayGameInfo(out, config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var (
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Fprintln(out, "\nShutting down gracefully...")
			fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
				stats.TotalGenerations, stats.Runtime().Seconds())
			return nil
		default:
		}

		frameStart := time.Now()
		if err = renderer.Clear(); err != nil {
			fmt.Fprintln(out, "Error clearing terminal:", err)
		}

		snap := grid.Snapshot()
		status := updateGameState(grid, snap, frameStart.Sub(lastFrameTime), stats)
		lastFrameTime = frameStart

		if status.stagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(out, snap, status, config, grid, stats)
		if err = renderer.Display(snap); err != nil {
			return err
		}

		if config.MaxGenerations > 0 && stats.TotalGenerations >= uint64(config.MaxGenerations) {
			fmt.Fprintf(out, "\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		if shouldRestart, reason := checkRestartConditions(status, stagnantCount, config); shouldRestart && config.AutoRestart {
			fmt.Fprintf(out, "Restarting due to %s...\n", reason)
			if err = restartGame(out, grid, config, stats); err != nil {
				return err
			}
			stagnantCount = 0
		} else if shouldInject(stagnantCount, config) {
			// Inject some life to try to break the stagnation
			if err = injectRandomLife(grid, config.InjectionCount, rng); err != nil {
				return err
			}
		}

		grid.Step()
		time.Sleep(config.FrameRate)
	}
}

// newFlagSet binds every configuration flag plus -config.
func newFlagSet(config *utils.Config, configPath *string) *flag.FlagSet {
	fs := flag.NewFlagSet("go-gol-env", flag.ContinueOnError)
	fs.StringVar(configPath, "config", *configPath, "path to JSON configuration")
	config.Bind(fs)
	return fs
}

// parseConfig loads the JSON file named by -config, falling back to defaults
// when it does not exist, then applies the remaining flags on top.
func parseConfig(out io.Writer, args []string) (utils.Config, error) {
	var (
		configPath = "config.json"
		scratch    = utils.DefaultConfig()
	)
	if err := newFlagSet(&scratch, &configPath).Parse(args); err != nil {
		return scratch, err
	}

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Fprintf(out, "Using default configuration (%s not found)\n", configPath)
		config = utils.DefaultConfig()
	}
	if err = newFlagSet(&config, &configPath).Parse(args); err != nil {
		return config, err
	}
	return config, config.Validate()
}
