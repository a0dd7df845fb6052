package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/xv-arena/assets"
	"github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/scenes"
	"github.com/automoto/xv-arena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(arenaPath string, watcher *config.Watcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, arenaPath, watcher)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config overrides, reloaded on change")
	arenaPath := flag.String("arena", assets.DefaultArena, "embedded arena map")
	flag.Parse()

	var watcher *config.Watcher
	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Warning: Could not watch config: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("xv-arena")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence for kill totals
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*arenaPath, watcher)); err != nil {
		log.Fatal(err)
	}
}
