package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/xv-arena/assets"
	"github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/server/core"
	"github.com/automoto/xv-arena/shared/leveldata"
	"github.com/automoto/xv-arena/shared/protocol"
	"github.com/automoto/xv-arena/systems"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 30, "Server tick rate (updates per second)")
	name := flag.String("name", "XV Arena", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	arenaPath := flag.String("arena", assets.DefaultArena, "Arena map path")
	levelsDir := flag.String("levels", "", "Load the arena from this directory instead of the embedded maps")
	configPath := flag.String("config", "", "YAML config overrides")
	masterURL := flag.String("master", "", "Server directory URL (empty = do not register)")
	address := flag.String("address", "", "Public address announced to the directory")
	region := flag.String("region", "", "Region announced to the directory")
	maxPlayers := flag.Int("maxplayers", 4, "Maximum players (0 = unlimited)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	arena, err := loadArena(*levelsDir, *arenaPath)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	server, err := core.NewServer(*tickRate, *maxPlayers, *name, *version, arena)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	registration := core.NewRegistration(*masterURL, *name, *address, *version, *region, *maxPlayers, server)
	registration.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		registration.Stop()
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting arena server %q on port %d (arena: %s, tick rate: %d/s, version: %s)",
		*name, *port, arena.Name, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func loadArena(levelsDir, path string) (*leveldata.ArenaData, error) {
	var fsys fs.FS = assets.Levels
	if levelsDir != "" {
		fsys = os.DirFS(levelsDir)
	}
	arena, err := leveldata.LoadArena(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return arena, nil
}
