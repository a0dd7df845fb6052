package core

import (
	"log"
	"sync"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop steps the server at a fixed rate and pushes state to clients
// after every step.
type GameLoop struct {
	server   *Server
	interval time.Duration
	ticks    uint64
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		interval: time.Second / time.Duration(max(1, tickRate)),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("Game loop started, %v per tick", g.interval)

	for {
		select {
		case <-g.stopChan:
			log.Printf("Game loop stopped after %d ticks", g.ticks)
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	start := time.Now()
	g.ticks++
	g.server.Step()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("Sync error on tick %d: %v", g.ticks, err)
	}
	// The ticker drops ticks rather than queueing them
	if took := time.Since(start); took > g.interval {
		log.Printf("Tick %d overran: %v > %v", g.ticks, took, g.interval)
	}
}
