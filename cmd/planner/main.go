package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/paris-metro/planner/internal/console"
	"github.com/paris-metro/planner/internal/db"
	"github.com/paris-metro/planner/internal/metro"
)

func main() {
	// Command line flags
	networkPath := flag.String("network", "metro.txt", "Path to the network description file")
	databasePath := flag.String("database", "", "Load the network from this SQLite database instead of a file")
	from := flag.String("from", "", "Departure station name (skips the prompt)")
	to := flag.String("to", "", "Arrival station name (skips the prompt)")
	flag.Parse()

	network, err := loadNetwork(*networkPath, *databasePath)
	if err != nil {
		log.Fatalf("Failed to load network: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	departures, err := resolveStations(network, reader, "Departure:", *from)
	if err != nil {
		log.Fatalf("Failed to resolve departure: %v", err)
	}
	arrivals, err := resolveStations(network, reader, "Arrival:", *to)
	if err != nil {
		log.Fatalf("Failed to resolve arrival: %v", err)
	}
	fmt.Println()

	itinerary, err := network.BestRoute(departures, arrivals)
	if err != nil {
		if errors.Is(err, metro.ErrNoRoute) {
			log.Fatal("No route connects those stations.")
		}
		log.Fatalf("Failed to plan route: %v", err)
	}

	console.Render(os.Stdout, network, itinerary)
}

func loadNetwork(networkPath, databasePath string) (*metro.Network, error) {
	if databasePath == "" {
		return metro.LoadFile(networkPath)
	}

	database, err := db.Connect(databasePath)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	return database.LoadNetwork(context.Background())
}

// resolveStations returns the candidate station ids for a name. When the
// name was not supplied as a flag it is prompted for on stdin, retrying
// until a known name comes in. A name shared by several lines yields all
// of them.
func resolveStations(n *metro.Network, reader *bufio.Reader, prompt, flagValue string) ([]int, error) {
	if flagValue != "" {
		ids := n.FindByName(strings.TrimSpace(flagValue))
		if len(ids) == 0 {
			return nil, fmt.Errorf("unknown station %q", flagValue)
		}
		return ids, nil
	}

	fmt.Printf("\n\x1b[1m%s\x1b[0m", prompt)
	for {
		line, err := reader.ReadString('\n')
		name := strings.TrimSpace(line)
		if ids := n.FindByName(name); len(ids) > 0 {
			return ids, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read station name: %w", err)
		}
		fmt.Println("Unknown station, please check that you have typed correctly.")
	}
}
