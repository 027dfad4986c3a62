package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-arena/server/core"
	"github.com/automoto/doomerang-arena/shared/protocol"
	"github.com/automoto/doomerang-arena/systems"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 30, "Server tick rate (updates per second)")
	arenaName := flag.String("arena", "", "Arena TMX path or builtin:<name> (empty = default arena)")
	seed := flag.Uint64("seed", 1, "Random seed for spawns and drops")
	autopilot := flag.Bool("autopilot", true, "Let the AI drive the player when no client does")
	offline := flag.Bool("offline", false, "Run without clients until all waves are cleared, then exit")
	limit := flag.Float64("limit", 600, "Offline game time limit in seconds")
	quiet := flag.Bool("quiet", false, "Do not log effect cues")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: records will not be saved: %v", err)
	}

	a, err := core.LoadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	server, err := core.NewServer(core.Config{
		TickRate:  *tickRate,
		Arena:     a,
		Seed:      *seed,
		Autopilot: *autopilot || *offline,
		Quiet:     *quiet,
	})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	if *offline {
		stats := server.RunOffline(*limit)
		rec := server.Records()
		log.Printf("Offline run on %q: won=%v wave=%d kills=%d resets=%d",
			a.Name, stats.Won, stats.BestWave, stats.Kills, stats.Resets)
		log.Printf("Records: best wave %d, wins %d, total kills %d over %d sessions",
			rec.BestWave, rec.Wins, rec.TotalKills, rec.Sessions)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting arena server on port %d (arena: %s, tick rate: %d/s)", *port, a.Name, *tickRate)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
