package core

import (
	"log"
	"sync"

	"github.com/automoto/doomerang-arena/fx"
	"github.com/automoto/doomerang-arena/game"
	"github.com/automoto/doomerang-arena/shared/arena"
	"github.com/automoto/doomerang-arena/shared/gamemath"
	"github.com/automoto/doomerang-arena/shared/messages"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Config holds what the server command parsed from its flags.
type Config struct {
	TickRate  int
	Arena     *arena.Arena
	Seed      uint64
	Autopilot bool // drive the player when no client does
	Quiet     bool // suppress effect cue logging
}

// Server runs one arena session and mirrors it to websocket clients. The
// first connected client drives the player.
type Server struct {
	session   *game.Session
	world     donburi.World // network world serialized by esync
	mirror    *mirror
	loop      *GameLoop
	transport *transports.WsServerTransport
	autopilot bool

	mu        sync.Mutex
	clients   map[*router.NetworkClient]struct{}
	driver    *router.NetworkClient
	pending   *messages.PlayerInput
	lastSeq   uint32
	wantPilot bool

	// applied is the sequence of the last input handed to the session.
	// Only the loop goroutine touches it.
	applied uint32

	records  *systems.SavedRecords
	finished sync.Once
}

// NewServer creates the session and the network world.
func NewServer(c Config) (*Server, error) {
	world := donburi.NewWorld()
	s, err := newServer(c, world, esyncTrack)
	if err != nil {
		return nil, err
	}

	// Set up the world for esync
	srvsync.UseEsync(world)

	// Register router callbacks
	s.setupRouterCallbacks()
	return s, nil
}

func newServer(c Config, world donburi.World, track trackFn) (*Server, error) {
	session, err := game.NewSession(game.Options{
		Arena:     c.Arena,
		Seed:      c.Seed,
		Fx:        fx.LogSink{Quiet: c.Quiet},
		Autopilot: c.Autopilot,
	})
	if err != nil {
		return nil, err
	}

	records, err := systems.LoadRecords()
	if err != nil {
		records = &systems.SavedRecords{}
	}

	s := &Server{
		session:   session,
		world:     world,
		mirror:    newMirror(world, track),
		autopilot: c.Autopilot,
		clients:   make(map[*router.NetworkClient]struct{}),
		wantPilot: c.Autopilot,
		records:   records,
	}
	s.loop = NewGameLoop(s, c.TickRate)
	session.OnBuild(s.mirror.attach)
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
	s.finish()
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	// Handle player input messages
	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	// Handle errors
	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	log.Printf("Client connected: %s", client.Id())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[client] = struct{}{}
	if s.driver == nil {
		s.driver = client
		s.lastSeq = 0
		s.wantPilot = false
		log.Printf("Client %s drives the player", client.Id())
	}
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, client)
	if s.driver == client {
		s.driver = nil
		s.pending = nil
		s.wantPilot = s.autopilot
	}
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if client != s.driver {
		return
	}
	s.queueInput(input)
}

// queueInput keeps the newest input. A press still waiting for the tick is
// kept even when a release overtakes it. Callers hold mu.
func (s *Server) queueInput(input messages.PlayerInput) {
	if s.lastSeq != 0 && input.Sequence <= s.lastSeq {
		return
	}
	if s.pending != nil && s.pending.Fire {
		input.Fire = true
	}
	s.lastSeq = input.Sequence
	s.pending = &input
}

// ProcessCommands applies what the router queued since the last tick. It
// runs on the loop goroutine.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	input := s.pending
	s.pending = nil
	wantPilot := s.wantPilot
	s.mu.Unlock()

	if s.session.Autopilot() != wantPilot {
		s.session.SetAutopilot(wantPilot)
	}
	if input == nil {
		return
	}

	s.session.SetPaused(input.Pause)
	s.session.SetInput(
		gamemath.FromXZ(input.MoveX, input.MoveZ, 0),
		gamemath.FromXZ(input.AimX, input.AimZ, 0),
		input.Fire,
	)
	if input.EquipNext {
		s.session.EquipNext()
	}
	s.applied = input.Sequence
}

// Step advances the session by dt seconds and refreshes the network world.
func (s *Server) Step(dt float64) {
	if err := s.session.Advance(dt); err != nil {
		log.Printf("Warning: session step failed: %v", err)
		return
	}
	s.mirror.sync(s.session, s.applied)
}

// RunOffline steps the session without clients until every wave is
// cleared or limit seconds of game time passed, then stores the records.
func (s *Server) RunOffline(limit float64) game.Stats {
	dt := 1 / float64(s.loop.tickRate)
	for t := 0.0; t < limit && !s.session.Won(); t += dt {
		s.ProcessCommands()
		s.Step(dt)
	}
	s.finish()
	return s.session.Stats()
}

// finish stores the session records once.
func (s *Server) finish() {
	s.finished.Do(func() {
		stats := s.session.Stats()
		s.records = systems.MergeRecords(s.records, stats.BestWave, stats.Won, stats.Kills)
		if err := systems.SaveRecords(s.records); err != nil {
			log.Printf("Warning: records not saved: %v", err)
		}
		s.session.Close()
	})
}

func logSyncError(err error) {
	log.Printf("Failed to setup network sync: %v", err)
}

// Session returns the running session. Only the loop goroutine may use it.
func (s *Server) Session() *game.Session { return s.session }

// World returns the network world
func (s *Server) World() donburi.World {
	return s.world
}

// Records returns the stored records including this session once finished.
func (s *Server) Records() systems.SavedRecords {
	return *s.records
}

// PlayerCount returns the number of connected clients
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
