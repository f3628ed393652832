package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-env/model"
	"github.com/sheikhrachel/go-gol-env/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Grid, *utils.Stats, error) {
	opts := []model.Option{
		model.WithParallel(config.UseParallel),
		model.WithBounded(config.UseBoundedGrid),
	}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewStatePool()))
	}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}

	grid, err := model.NewGrid(config.Rows, config.Cols, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}
	if config.AddPatterns {
		if err = addInterestingPatterns(grid); err != nil {
			return nil, nil, errors.Wrap(err, "[initializeGame] failed to add patterns")
		}
	}

	return grid, utils.NewStats(), nil
}

// newInjectionRNG returns the generator used to pick injection coordinates.
// A zero seed gives an unseeded generator.
func newInjectionRNG(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), 1))
}

// addInterestingPatterns stamps gliders and blinkers where they fit
func addInterestingPatterns(grid *model.Grid) error {
	rows, cols := grid.Dimensions()
	if rows < 10 || cols < 10 {
		return nil
	}

	if err := grid.AddGlider(5, 5); err != nil {
		return err
	}
	if rows >= 15 && cols >= 20 {
		if err := grid.AddGlider(5, cols-8); err != nil {
			return err
		}
	}
	if err := grid.AddBlinker(rows/4, cols/4); err != nil {
		return err
	}
	if cols >= 30 {
		return grid.AddBlinker(3*rows/4, 3*cols/4)
	}
	return nil
}

// injectRandomLife sets count random cells alive to break stagnation
func injectRandomLife(grid *model.Grid, count int, rng *rand.Rand) error {
	rows, cols := grid.Dimensions()
	for range count {
		if err := grid.SetCellState(rng.IntN(rows), rng.IntN(cols), model.Alive); err != nil {
			return errors.Wrap(err, "[injectRandomLife]")
		}
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	rows, cols := grid.Dimensions()
	fmt.Fprintf(out, "Features: Memory Pool: %v, Bounded: %v, Parallel: %v, Seed: %d\n",
		config.UseMemoryPool, config.UseBoundedGrid, config.UseParallel, config.Seed)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		rows, cols, grid.CountLivingCells())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// gameStatus describes one rendered generation
type gameStatus struct {
	livingCells int
	density     float64
	stagnant    bool
	label       string
}

// updateGameState updates stats and classifies the current generation
func updateGameState(grid *model.Grid, snap model.Snapshot, frameDuration time.Duration, stats *utils.Stats) gameStatus {
	livingCells := snap.CountAlive()
	stats.Update(livingCells, frameDuration)

	status := gameStatus{
		livingCells: livingCells,
		density:     float64(livingCells) / float64(snap.Rows*snap.Cols) * 100,
		stagnant:    grid.IsStagnant(),
		label:       "Active",
	}
	switch {
	case livingCells == 0:
		status.label = "Extinct"
	case status.stagnant:
		status.label = fmt.Sprintf("Stagnant (%d)", snap.Generation)
	}
	return status
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	snap model.Snapshot,
	status gameStatus,
	config utils.Config,
	grid *model.Grid,
	stats *utils.Stats,
) {
	// Show bounding box info for bounded grids
	boundingInfo := ""
	if config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", grid.BoundingBoxSize())
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		snap.Generation, status.livingCells, status.density, status.label, boundingInfo)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds(), stats.Restarts)
	fmt.Fprintln(out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(status gameStatus, stagnantCount int, config utils.Config) (bool, string) {
	if status.livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// shouldInject reports whether a stagnant run is due for injected life
// before it reaches the restart threshold.
func shouldInject(stagnantCount int, config utils.Config) bool {
	return config.InjectionCount > 0 && stagnantCount >= 2 && stagnantCount < config.StagnationThreshold
}

// restartGame re-randomizes the grid in place
func restartGame(out io.Writer, grid *model.Grid, config utils.Config, stats *utils.Stats) error {
	grid.Randomize()
	if config.AddPatterns {
		if err := addInterestingPatterns(grid); err != nil {
			return errors.Wrap(err, "[restartGame] failed to add patterns")
		}
	}
	stats.Restarts++
	fmt.Fprintf(out, "New generation loaded! Living cells: %d\n", grid.CountLivingCells())
	return nil
}
