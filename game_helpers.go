package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	errMaxGenerations = errors.New("maximum generations reached")
	errQuit           = errors.New("quit requested")
)

const helpText = "commands: p toggle run | pause | resume | c clear | r restart | slow, medium, fast | " +
	"t <index> or t <row> <col> | pattern <glider|blinker|block> <row> <col> | q quit"

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, speed engine.Speed, logger *log.Logger) (
	*engine.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	sim, err := engine.New(config.Dimension,
		engine.WithRand(model.NewRand(config.Seed)),
		engine.WithSpeed(speed),
		engine.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}

	renderer := &model.TerminalRenderer{Out: os.Stdout}
	stats := utils.NewStats()

	return sim, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, snap engine.Snapshot) {
	dimension := snap.Grid.GetDimension()
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d | Speed: %s\n",
		dimension, dimension, snap.Grid.CountLivingCells(), snap.Speed)
	if config.Interactive {
		fmt.Fprintln(w, helpText)
	}
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// gameStatus summarizes a snapshot for display
func gameStatus(snap engine.Snapshot, stats *utils.Stats) (int, float64, string) {
	livingCells := snap.Grid.CountLivingCells()
	density := float64(livingCells) / float64(snap.Grid.Len()) * 100

	status := "Running"
	switch {
	case livingCells == 0:
		status = "Extinct"
	case stats.IsStagnant():
		status = "Stagnant"
	}
	if !snap.Running {
		status += " (paused)"
	}
	return livingCells, density, status
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, snap engine.Snapshot, config utils.Config, stats *utils.Stats) {
	livingCells, density, status := gameStatus(snap, stats)

	fmt.Fprintf(w, "Generation: %d | Living: %d | Density: %.1f%% | Speed: %s | Status: %s\n",
		snap.Generation, livingCells, density, snap.Speed, status)
	if config.ShowStats {
		fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
			stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	}
	fmt.Fprintln(w)
}

// renderLoop redraws the board from snapshots until ctx is done
func renderLoop(
	ctx context.Context,
	config utils.Config,
	sim *engine.Simulation,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	ticker := time.NewTicker(config.RefreshRate)
	defer ticker.Stop()

	for {
		snap := sim.Snapshot()
		stats.Update(snap.Generation, snap.Grid.CountLivingCells(), snap.Grid.GetGridHash(), time.Now())

		renderer.Clear()
		displayGameStatus(renderer.Out, snap, config, stats)
		renderer.Display(snap.Grid)

		if config.MaxGenerations > 0 && snap.Generation >= config.MaxGenerations {
			return errors.Wrapf(errMaxGenerations, "limit %d", config.MaxGenerations)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// readCommands forwards stdin lines until EOF; it cannot be interrupted and is left running on exit
func readCommands(r io.Reader, lines chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	close(lines)
}

// handleCommands applies stdin commands to the simulation until ctx is done or q is entered
func handleCommands(ctx context.Context, sim *engine.Simulation, lines <-chan string, logger *log.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := applyCommand(sim, line); err != nil {
				if errors.Is(err, errQuit) {
					return err
				}
				logger.Printf("command %q rejected: %v", line, err)
			}
		}
	}
}

// applyCommand maps one line of user input onto the simulation API
func applyCommand(sim *engine.Simulation, line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "p":
		sim.ToggleExecution()
	case "pause":
		sim.Pause()
	case "resume":
		sim.Resume()
	case "c", "clear":
		return sim.ClearBoard()
	case "r", "restart":
		return sim.Restart()
	case "slow", "medium", "fast":
		speed, err := engine.ParseSpeed(fields[0])
		if err != nil {
			return err
		}
		return sim.SetSpeed(speed)
	case "t", "toggle":
		index, err := cellIndex(sim.Snapshot().Grid, fields[1:])
		if err != nil {
			return err
		}
		return sim.ToggleCell(index)
	case "pattern":
		indices, err := patternIndices(sim.Snapshot().Grid, fields[1:])
		if err != nil {
			return err
		}
		return sim.Place(indices...)
	case "q", "quit":
		return errQuit
	default:
		return errors.Errorf("[applyCommand] unknown command %q; %s", fields[0], helpText)
	}
	return nil
}

// patternIndices parses "<name> <row> <col>"
func patternIndices(grid *model.Grid, args []string) ([]int, error) {
	if len(args) != 3 {
		return nil, errors.Errorf("[patternIndices] expected <name> <row> <col>, names: %s",
			strings.Join(model.PatternNames(), ", "))
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, errors.Wrapf(err, "[patternIndices] bad row %q", args[1])
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, errors.Wrapf(err, "[patternIndices] bad col %q", args[2])
	}
	return grid.PatternIndices(args[0], row, col)
}

// cellIndex parses either "<index>" or "<row> <col>"
func cellIndex(grid *model.Grid, args []string) (int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, errors.Wrapf(err, "[cellIndex] bad number %q", a)
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 1:
		return nums[0], nil
	case 2:
		return grid.Index(nums[0], nums[1])
	default:
		return 0, errors.New("[cellIndex] expected <index> or <row> <col>")
	}
}
