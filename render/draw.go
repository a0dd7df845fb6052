package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/systems"
	"github.com/automoto/xv-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 160
	hudBarHeight = 12
	hudMargin    = 10
)

// view maps arena coordinates onto the screen, centered on the player.
type view struct {
	camX, camY float64
	scale      float64
}

func newView(w donburi.World, screen *ebiten.Image) view {
	v := view{scale: cfg.C.DrawScale}
	if v.scale <= 0 {
		v.scale = 1
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float64(cfg.C.ArenaWidth)/2, float64(cfg.C.ArenaHeight)/2
	if player, ok := systems.ActivePlayer(w); ok {
		t := components.Transform.Get(player)
		cx, cy = t.Position[0], t.Position[1]
	}
	v.camX = float64(width)/2 - cx*v.scale
	v.camY = float64(height)/2 - cy*v.scale
	return v
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x*v.scale + v.camX), float32(y*v.scale + v.camY)
}

// DrawArena renders blockers, characters, pickups and effects top down.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(color.Black)
	v := newView(ecs.World, screen)

	tags.Blocker.Each(ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		x, y := v.point(obj.X, obj.Y)
		vector.DrawFilledRect(screen, x, y, float32(obj.W*v.scale), float32(obj.H*v.scale), cfg.Gray, false)
	})

	tags.Pickup.Each(ecs.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		t := components.Transform.Get(entry)
		x, y := v.point(t.Position[0], t.Position[1])
		c := cfg.LightBlue
		if item.Kind == cfg.ItemPotion {
			c = cfg.LightGreen
		}
		if !item.Grounded {
			c = cfg.Yellow
		}
		vector.DrawFilledCircle(screen, x, y, float32(math.Max(2, item.Radius*v.scale)), c, false)
	})

	tags.Enemy.Each(ecs.World, func(entry *donburi.Entry) {
		drawCombatant(screen, v, entry)
	})

	if player, ok := systems.ActivePlayer(ecs.World); ok {
		t := components.Transform.Get(player)
		body := components.Body.Get(player)
		drawBody(screen, v, t, body.Radius, cfg.Blue)
	}

	if fx, ok := components.Effects.First(ecs.World); ok {
		for _, inst := range components.Effects.Get(fx).Active {
			x, y := v.point(inst.Location[0], inst.Location[1])
			vector.DrawFilledCircle(screen, x, y, 3, effectColor(inst.Effect), false)
		}
	}
}

func drawCombatant(screen *ebiten.Image, v view, entry *donburi.Entry) {
	body := components.Body.Get(entry)
	if !body.Visible() {
		return
	}
	c := components.Combatant.Get(entry)
	t := components.Transform.Get(entry)

	col := cfg.Red
	switch {
	case c.IsDead:
		col = cfg.Gray
	case c.IsAvoiding:
		col = cfg.Orange
	case c.IsBoss:
		col = cfg.Purple
	}
	drawBody(screen, v, t, body.Radius, col)

	if c.IsDead || c.MaxHealth <= 0 {
		return
	}
	x, y := v.point(t.Position[0]-body.Radius, t.Position[1]-body.Radius)
	w := float32(body.Radius * 2 * v.scale)
	vector.DrawFilledRect(screen, x, y-6, w, 3, cfg.Red, false)
	vector.DrawFilledRect(screen, x, y-6, w*float32(c.Health/c.MaxHealth), 3, cfg.Green, false)
}

func drawBody(screen *ebiten.Image, v view, t *components.TransformData, radius float64, c color.Color) {
	x, y := v.point(t.Position[0], t.Position[1])
	r := float32(math.Max(3, radius*v.scale))
	vector.DrawFilledCircle(screen, x, y, r, c, false)

	fwd := t.Forward()
	fx, fy := v.point(t.Position[0]+fwd[0]*radius*1.5, t.Position[1]+fwd[1]*radius*1.5)
	vector.StrokeLine(screen, x, y, fx, fy, 1, cfg.White, false)
}

func effectColor(id cfg.EffectID) color.Color {
	switch id {
	case cfg.EffectMuzzleFlash:
		return cfg.Yellow
	case cfg.EffectImpact:
		return cfg.Orange
	default:
		return cfg.White
	}
}

// DrawHUD renders the player's health, potions and the kill counters.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if player, ok := systems.ActivePlayer(ecs.World); ok {
		p := components.Player.Get(player)
		vector.DrawFilledRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth), float32(hudBarHeight),
			color.RGBA{40, 40, 40, 255}, false)
		vector.DrawFilledRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*float32(p.HealthPercent()), float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)

		item := p.CurrentItem
		if item == "" {
			item = "-"
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("HP %.0f/%.0f  potions %d  item %s", p.Health, p.MaxHealth, p.HealthPotionCount, item),
			hudMargin, hudMargin+hudBarHeight+4)
	} else {
		ebitenutil.DebugPrintAt(screen, "YOU DIED - press R to restart", hudMargin, hudMargin)
	}

	if d, ok := components.Director.First(ecs.World); ok {
		dd := components.Director.Get(d)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("kills %d (boss %d)  all time %d", dd.Kills, dd.BossKills, dd.TotalKills),
			hudMargin, hudMargin+hudBarHeight+20)
	}

	if clock := systems.GetClock(ecs.World); clock != nil && clock.Dilation < 1 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SLOW x%.2f", clock.Dilation),
			screen.Bounds().Dx()-90, hudMargin)
	}

	drawBossBar(ecs.World, screen)
}

func drawBossBar(w donburi.World, screen *ebiten.Image) {
	boss, ok := tags.Boss.First(w)
	if !ok {
		return
	}
	c := components.Combatant.Get(boss)
	if c.IsDead || c.MaxHealth <= 0 {
		return
	}
	width := float32(screen.Bounds().Dx()) / 2
	x := width / 2
	y := float32(screen.Bounds().Dy() - 24)
	vector.DrawFilledRect(screen, x, y, width, 8, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, x, y, width*float32(c.Health/c.MaxHealth), 8, cfg.Purple, false)
	ebitenutil.DebugPrintAt(screen, c.TypeName, int(x), int(y)-16)
}
