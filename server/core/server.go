package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/automoto/xv-arena/shared/leveldata"
	"github.com/automoto/xv-arena/shared/messages"
	"github.com/automoto/xv-arena/systems"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Seconds a disconnected player lingers so the client can reconnect.
const reconnectGrace = 10.0

// Server runs the arena simulation and syncs it to connected clients
type Server struct {
	ecs       *ecs.ECS
	world     donburi.World
	arena     *leveldata.ArenaData
	loop      *GameLoop
	transport *transports.WsServerTransport

	name       string
	version    string
	tickRate   int
	maxPlayers int

	// Guarded by mu. Router callbacks run on transport goroutines and only
	// queue commands; the world is touched from the game loop alone.
	clients  map[*router.NetworkClient]*clientState
	tokens   map[string]*clientState
	commands []func()
	mu       sync.Mutex

	nextSpawn int
	gameState donburi.Entity
	kills     int // mirrored for other goroutines, guarded by mu
}

// clientState is one player's seat in the arena, kept across reconnects.
type clientState struct {
	token   string
	entity  donburi.Entity
	spawned bool
	client  *router.NetworkClient
	input   messages.PlayerInput
	prev    messages.PlayerInput
	linger  *components.Timer
}

// NewServer creates a game server for the given arena. maxPlayers <= 0
// means no limit.
func NewServer(tickRate, maxPlayers int, name, version string, arena *leveldata.ArenaData) (*Server, error) {
	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	s := &Server{
		ecs:        e,
		world:      world,
		arena:      arena,
		name:       name,
		version:    version,
		tickRate:   tickRate,
		maxPlayers: maxPlayers,
		clients:    make(map[*router.NetworkClient]*clientState),
		tokens:     make(map[string]*clientState),
	}

	// The sim steps once per server tick
	cfg.C.TPS = tickRate
	systems.SetupWorld(e, nil)
	systems.RegisterSystems(e)
	systems.RestoreDirectorStats(world)
	if err := systems.BuildArena(e, arena); err != nil {
		return nil, fmt.Errorf("build arena: %w", err)
	}
	s.subscribeEvents()
	s.createGameState()

	s.loop = NewGameLoop(s, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	// Register router callbacks
	s.setupRouterCallbacks()

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
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
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

// enqueue defers fn to the start of the next tick.
func (s *Server) enqueue(fn func()) {
	s.mu.Lock()
	s.commands = append(s.commands, fn)
	s.mu.Unlock()
}

// ProcessCommands runs everything the router queued since the last tick.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	cmds := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		log.Printf("Rejecting %s: version %q, want %q", client.Id(), req.Version, s.version)
		_ = client.SendMessage(messages.JoinRejected{Reason: messages.RejectVersion})
		return
	}

	s.mu.Lock()
	if _, joined := s.clients[client]; joined {
		s.mu.Unlock()
		return
	}
	cs, resumed := s.tokens[req.ReconnectToken]
	if resumed && cs.client != nil {
		resumed = false
	}
	if !resumed && s.maxPlayers > 0 && len(s.clients) >= s.maxPlayers {
		s.mu.Unlock()
		log.Printf("Rejecting %s: arena full (%d players)", client.Id(), s.maxPlayers)
		_ = client.SendMessage(messages.JoinRejected{Reason: messages.RejectFull})
		return
	}
	if !resumed {
		cs = &clientState{token: uuid.NewString()}
		s.tokens[cs.token] = cs
	}
	cs.client = client
	s.clients[client] = cs
	s.mu.Unlock()

	s.enqueue(func() {
		resumed = resumed && cs.spawned && s.world.Valid(cs.entity)
		if resumed {
			cs.linger.Cancel()
			cs.linger = nil
			log.Printf("Player %s resumed by client %s", cs.token, client.Id())
		} else {
			s.spawnPlayer(cs)
		}
		s.accept(client, cs, resumed)
	})
}

func (s *Server) spawnPlayer(cs *clientState) {
	entry := systems.SpawnPlayer(s.ecs, s.arena, s.nextSpawn)
	s.nextSpawn++
	if entry == nil {
		return
	}
	entity := entry.Entity()
	if err := s.syncPlayer(&entity); err != nil {
		log.Printf("Failed to setup network sync for player: %v", err)
		systems.RemovePlayer(s.ecs, entry)
		return
	}
	cs.entity = entity
	cs.spawned = true
	log.Printf("Player spawned for token %s", cs.token)
}

func (s *Server) accept(client *router.NetworkClient, cs *clientState, resumed bool) {
	var netID esync.NetworkId
	if cs.spawned && s.world.Valid(cs.entity) {
		if nid := esync.GetNetworkId(s.world.Entry(cs.entity)); nid != nil {
			netID = *nid
		}
	}
	err := client.SendMessage(messages.JoinAccepted{
		NetworkID:      netID,
		ReconnectToken: cs.token,
		Resumed:        resumed,
		ServerName:     s.name,
		Arena:          s.ArenaName(),
		TickRate:       s.tickRate,
	})
	if err != nil {
		log.Printf("Failed to accept %s: %v", client.Id(), err)
	}
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	cs, exists := s.clients[client]
	if exists {
		delete(s.clients, client)
		cs.client = nil
		cs.input = messages.PlayerInput{}
	}
	s.mu.Unlock()
	if !exists {
		return
	}

	s.enqueue(func() {
		if !cs.spawned || !s.world.Valid(cs.entity) {
			s.forget(cs)
			return
		}
		entry := s.world.Entry(cs.entity)
		systems.SetPlayerInput(entry, nil)
		cs.linger = systems.Schedule(s.ecs, entry, "reconnect-grace", reconnectGrace,
			func(e *ecs.ECS, owner *donburi.Entry) {
				systems.RemovePlayer(e, owner)
				s.forget(cs)
				log.Printf("Player entity removed for token %s", cs.token)
			})
	})
}

func (s *Server) forget(cs *clientState) {
	s.mu.Lock()
	if cs.client == nil {
		delete(s.tokens, cs.token)
	}
	s.mu.Unlock()
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, exists := s.clients[client]
	if !exists || input.Sequence < cs.input.Sequence {
		return
	}
	cs.input = input
}

// applyInputs hands each client's latest input to its player. Shots and
// potions fire on the press, not while held.
func (s *Server) applyInputs() {
	s.mu.Lock()
	seats := make([]*clientState, 0, len(s.clients))
	for _, cs := range s.clients {
		seats = append(seats, cs)
	}
	s.mu.Unlock()

	for _, cs := range seats {
		if !cs.spawned {
			continue
		}
		if !s.world.Valid(cs.entity) {
			// Dead players are removed by the sim; put them back in
			s.spawnPlayer(cs)
			continue
		}
		s.mu.Lock()
		in, prev := cs.input, cs.prev
		cs.prev = in
		s.mu.Unlock()

		entry := s.world.Entry(cs.entity)
		systems.SetPlayerInput(entry, []float64{in.MoveX, in.MoveY, 0})
		systems.SetPlayerStance(entry, in.Sprint, in.Crouch, in.Aim)
		systems.SetPlayerWeapon(s.ecs, entry, components.WeaponSlot(in.Weapon))

		if in.Shoot && !prev.Shoot {
			if target, outcome := systems.PlayerShoot(s.ecs, entry); target != nil {
				s.broadcastEvent(messages.DamageEvent{
					AttackerID: netIDOf(entry),
					TargetID:   netIDOf(target),
					Amount:     cfg.Player.ShotDamage,
					Outcome:    outcome.String(),
				})
			}
		}
		if in.UsePotion && !prev.UsePotion {
			systems.ConsumeHealthPotion(s.ecs, entry)
		}
	}
}

// broadcastEvent sends msg to every joined client
func (s *Server) broadcastEvent(msg any) {
	s.mu.Lock()
	targets := make([]*router.NetworkClient, 0, len(s.clients))
	for client := range s.clients {
		targets = append(targets, client)
	}
	s.mu.Unlock()

	for _, client := range targets {
		if err := client.SendMessage(msg); err != nil {
			log.Printf("Failed to send %T to %s: %v", msg, client.Id(), err)
		}
	}
}

func (s *Server) subscribeEvents() {
	w := s.world
	events.CombatantKilledEvent.Subscribe(w, func(w donburi.World, ev events.CombatantKilled) {
		msg := messages.CombatantKilledEvent{TypeName: ev.TypeName, IsBoss: ev.IsBoss}
		if w.Valid(ev.Entity) {
			msg.NetworkID = netIDOf(w.Entry(ev.Entity))
		}
		if len(ev.Location) == 3 {
			msg.X, msg.Y, msg.Z = ev.Location[0], ev.Location[1], ev.Location[2]
		}
		s.broadcastEvent(msg)
	})
	events.SlowMotionEvent.Subscribe(w, func(w donburi.World, ev events.SlowMotion) {
		s.broadcastEvent(messages.SlowMotionEvent{Dilation: ev.Dilation, Duration: ev.Duration})
	})
	events.PlaySoundEvent.Subscribe(w, func(w donburi.World, ev events.PlaySound) {
		msg := messages.SoundEvent{Sound: int(ev.Sound)}
		if len(ev.Location) == 3 {
			msg.X, msg.Y, msg.Z = ev.Location[0], ev.Location[1], ev.Location[2]
		}
		s.broadcastEvent(msg)
	})
	events.SpawnEffectEvent.Subscribe(w, func(w donburi.World, ev events.SpawnEffect) {
		msg := messages.EffectEvent{Effect: int(ev.Effect)}
		if len(ev.Location) == 3 {
			msg.X, msg.Y, msg.Z = ev.Location[0], ev.Location[1], ev.Location[2]
		}
		s.broadcastEvent(msg)
	})
}

func netIDOf(entry *donburi.Entry) uint {
	if entry == nil || !entry.Valid() {
		return 0
	}
	if nid := esync.GetNetworkId(entry); nid != nil {
		return uint(*nid)
	}
	return 0
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// ArenaName returns the name of the arena being served
func (s *Server) ArenaName() string {
	return s.arena.Name
}

// Kills returns the arena's session kill count. Safe to call from any
// goroutine; it reads the last mirrored game state.
func (s *Server) Kills() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kills
}
