package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON configuration file")

	// Load configuration - fallback to defaults if file doesn't exist
	path := configFromArgs(os.Args[1:], *configPath)
	config, err := utils.LoadConfig(path)
	if err != nil {
		fmt.Printf("Using default configuration (%s not loaded)\n", path)
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	speed, err := config.Validate()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := log.New(os.Stderr, "go-life: ", log.LstdFlags)
	sim, renderer, stats, err := initializeGame(config, speed, logger)
	if err != nil {
		log.Fatal(err)
	}
	displayGameInfo(os.Stdout, config, sim.Snapshot())
	time.Sleep(2 * time.Second)

	// Handle Ctrl+C gracefully
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return sim.Run(ctx) })
	eg.Go(func() error { return renderLoop(ctx, config, sim, renderer, stats) })
	if config.Interactive {
		lines := make(chan string)
		go readCommands(os.Stdin, lines)
		eg.Go(func() error { return handleCommands(ctx, sim, lines, logger) })
	}

	err = eg.Wait()
	switch {
	case errors.Is(err, errMaxGenerations):
		fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
	case err != nil && !errors.Is(err, errQuit):
		log.Fatal(err)
	default:
		fmt.Println("\n🛑 Shutting down gracefully...")
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// configFromArgs finds -config ahead of flag.Parse so file values can be overridden by flags
func configFromArgs(args []string, fallback string) string {
	for i, a := range args {
		switch {
		case (a == "-config" || a == "--config") && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return fallback
}
