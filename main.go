package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/doomerang-arena/network"
	"github.com/automoto/doomerang-arena/shared/protocol"
)

func main() {
	addr := flag.String("addr", "localhost:7373", "Arena server address")
	rate := flag.Int("rate", 20, "Inputs sent per second")
	drive := flag.Bool("drive", true, "Steer the player (only the first client to connect drives)")
	duration := flag.Duration("duration", 0, "Disconnect after this long (0 runs until interrupted)")
	flag.Parse()

	if *rate <= 0 {
		log.Fatalf("Invalid input rate %d", *rate)
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*addr)
	defer client.Disconnect()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	replica := network.NewReplica()
	pilot := network.Pilot{FireRange: 15, KeepAway: 4}
	var history network.InputHistory

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()
	report := time.NewTicker(time.Second)
	defer report.Stop()

	for {
		select {
		case <-sigChan:
			log.Println("Shutting down client...")
			return
		case <-deadline:
			return
		case <-report.C:
			printStatus(client, replica, &history)
		case now := <-ticker.C:
			switch client.State() {
			case network.StateError:
				log.Fatalf("Connection failed: %v", client.LastError())
			case network.StateConnected:
			default:
				continue
			}

			if snap := client.LatestSnapshot(); snap != nil {
				replica.Apply(*snap)
				if p, ok := replica.Player(); ok {
					history.Ack(p.LastInput, now)
				}
			}
			if !*drive {
				continue
			}
			input := history.Next(pilot.Steer(replica), now)
			if err := client.SendMessage(input); err != nil {
				log.Printf("[client] send error: %v", err)
			}
		}
	}
}

func printStatus(client *network.Client, replica *network.Replica, history *network.InputHistory) {
	wave, ok := replica.Wave()
	if !ok {
		log.Printf("[client] %s, waiting for state", client.State())
		return
	}
	player, _ := replica.Player()
	log.Printf("[client] wave %d/%d live=%d kills=%d resets=%d | hp %d/%d %s ammo=%d | unacked=%d",
		wave.Wave, wave.Waves, wave.Live, wave.Kills, wave.Resets,
		player.Health, player.MaxHealth, player.Weapon, player.Ammo,
		len(history.Unacknowledged()))
}
