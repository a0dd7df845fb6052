package scenes

import (
	"log"
	"math"
	"sync"

	"github.com/automoto/xv-arena/assets"
	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/render"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/shared/leveldata"
	"github.com/automoto/xv-arena/systems"
	"github.com/automoto/xv-arena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the single-player sandbox: one player against the
// combatants placed in the arena map.
type ArenaScene struct {
	ecs          *ecs.ECS
	player       *donburi.Entry
	sceneChanger SceneChanger
	arenaPath    string
	watcher      *cfg.Watcher
	once         sync.Once
}

// NewArenaScene creates a scene for the embedded arena at arenaPath. A
// non-nil watcher hot-reloads config between ticks.
func NewArenaScene(sc SceneChanger, arenaPath string, watcher *cfg.Watcher) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, arenaPath: arenaPath, watcher: watcher}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.reloadConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.arenaPath, as.watcher))
		return
	}
	as.handleInput()
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	render.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())
	as.ecs = ecs

	// Audio drains last tick's sounds before the effects system clears them
	ecs.AddSystem(render.UpdateAudio)
	systems.SetupWorld(ecs, nil)
	systems.RegisterSystems(ecs)
	systems.RestoreDirectorStats(ecs.World)

	ecs.AddRenderer(cfg.Default, render.DrawArena)
	ecs.AddRenderer(cfg.Default, render.DrawHUD)

	arena, err := leveldata.LoadArena(assets.Levels, as.arenaPath)
	if err != nil {
		panic("failed to load arena: " + err.Error())
	}
	if err := systems.BuildArena(ecs, arena); err != nil {
		panic("failed to build arena: " + err.Error())
	}
	as.player = systems.SpawnPlayer(ecs, arena, 0)
}

func (as *ArenaScene) reloadConfig() {
	if as.watcher == nil {
		return
	}
	for {
		path, ok := as.watcher.Poll()
		if !ok {
			return
		}
		if err := cfg.LoadFile(path); err != nil {
			log.Printf("[config] Warning: reload of %s failed: %v", path, err)
			continue
		}
		render.InvalidateTones()
		log.Printf("[config] reloaded %s", path)
	}
}

func (as *ArenaScene) handleInput() {
	player := as.player
	if player == nil || !player.Valid() {
		return
	}

	dir := vector.Vector{0, 0, 0}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir[1]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir[0]++
	}
	systems.SetPlayerInput(player, dir)
	systems.SetPlayerStance(player,
		ebiten.IsKeyPressed(ebiten.KeyShift),
		ebiten.IsKeyPressed(ebiten.KeyC),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if target, outcome := systems.PlayerShoot(as.ecs, player); target != nil {
			log.Printf("[player] shot %s: %s", components.Combatant.Get(target).TypeName, outcome)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		systems.ConsumeHealthPotion(as.ecs, player)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		systems.SetPlayerWeapon(as.ecs, player, components.WeaponMain)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		systems.SetPlayerWeapon(as.ecs, player, components.WeaponSub)
	}

	// Debug spawns in front of the player
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		t := components.Transform.Get(player)
		at := t.Position.Add(t.Forward().Scale(400))
		typeName := cfg.Enemy.DefaultType
		if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
			typeName = "Warden"
		}
		factory.CreateCombatant(as.ecs, typeName, gamemath.Lift(at, 0), t.Yaw+math.Pi)
	}
}
