package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	heartbeatInterval = 30 * time.Second
	registerRetries   = 3
)

// Registration lists the arena in a server directory and keeps the entry
// fresh with heartbeats carrying player and kill counts.
type Registration struct {
	directoryURL string
	listing      listing
	server       *Server
	client       *http.Client

	mu       sync.Mutex
	serverID string

	stopCh   chan struct{}
	stopOnce sync.Once
}

type listing struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Arena      string `json:"arena"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
	Region     string `json:"region"`
}

type heartbeat struct {
	ID      string `json:"id"`
	Players int    `json:"players"`
	Kills   int    `json:"kills"`
}

// NewRegistration prepares a listing. An empty directoryURL disables it.
func NewRegistration(directoryURL, name, address, version, region string, maxPlayers int, server *Server) *Registration {
	return &Registration{
		directoryURL: directoryURL,
		listing: listing{
			Name:       name,
			Address:    address,
			Arena:      server.ArenaName(),
			MaxPlayers: maxPlayers,
			Version:    version,
			Region:     region,
		},
		server: server,
		client: &http.Client{Timeout: 5 * time.Second},
		stopCh: make(chan struct{}),
	}
}

func (r *Registration) Start() {
	if r.directoryURL == "" {
		return
	}
	go r.run()
}

// Stop ends heartbeats. The directory expires the listing on its own.
func (r *Registration) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
}

func (r *Registration) run() {
	for attempt := 1; attempt <= registerRetries; attempt++ {
		err := r.register()
		if err == nil {
			break
		}
		log.Printf("[registration] attempt %d/%d failed: %v", attempt, registerRetries, err)
		select {
		case <-r.stopCh:
			return
		case <-time.After(time.Duration(attempt) * 2 * time.Second):
		}
	}

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			if err := r.sendHeartbeat(); err != nil {
				log.Printf("[registration] heartbeat failed: %v", err)
			}
		}
	}
}

func (r *Registration) id() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.serverID
}

func (r *Registration) register() error {
	l := r.listing
	l.Players = r.server.PlayerCount()

	resp, err := r.post("/servers/register", l)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	r.mu.Lock()
	r.serverID = result.ID
	r.mu.Unlock()
	log.Printf("[registration] listed arena %q (id=%s)", l.Arena, result.ID)
	return nil
}

func (r *Registration) sendHeartbeat() error {
	id := r.id()
	if id == "" {
		return r.register()
	}
	resp, err := r.post("/servers/heartbeat", heartbeat{
		ID:      id,
		Players: r.server.PlayerCount(),
		Kills:   r.server.Kills(),
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		log.Println("[registration] directory dropped the listing, registering again")
		return r.register()
	default:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
}

func (r *Registration) post(path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	resp, err := r.client.Post(r.directoryURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	return resp, nil
}
