package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
	done     chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 20
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	defer close(g.done)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	last := time.Now()
	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case now := <-ticker.C:
			g.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Stop ends Run and waits briefly for the current tick to finish.
func (g *GameLoop) Stop() {
	select {
	case <-g.stopChan:
		return
	default:
		close(g.stopChan)
	}
	select {
	case <-g.done:
	case <-time.After(time.Second):
	}
}

func (g *GameLoop) tick(dt float64) {
	g.server.ProcessCommands()
	g.server.Step(dt)

	if err := srvsync.DoSync(); err != nil {
		log.Printf("Sync error: %v", err)
	}
}
