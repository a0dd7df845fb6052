package systems

import (
	"math"
	"sort"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/automoto/xv-arena/events"
	"github.com/automoto/xv-arena/shared/gamemath"
	"github.com/automoto/xv-arena/tags"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RangedHitResult reports what a ranged hit check did.
type RangedHitResult int

const (
	RangedAborted  RangedHitResult = iota // attacker avoiding or dead, or no player
	RangedNoTarget                        // nothing in the sweep, or every candidate occluded
	RangedHit
	RangedMiss
)

func (r RangedHitResult) String() string {
	switch r {
	case RangedAborted:
		return "aborted"
	case RangedNoTarget:
		return "no-target"
	case RangedHit:
		return "hit"
	case RangedMiss:
		return "miss"
	}
	return "unknown"
}

// ResolveRangedHit sweeps a box from the attacker's muzzle height toward the
// active player and resolves the first unoccluded player it touches: shot
// effects always play, damage lands on a successful hit roll.
func ResolveRangedHit(e *ecs.ECS, attacker *donburi.Entry) RangedHitResult {
	if attacker == nil || !attacker.Valid() || !attacker.HasComponent(components.Combatant) {
		return RangedAborted
	}
	c := components.Combatant.Get(attacker)
	if c.IsDead || c.IsAvoiding {
		return RangedAborted
	}
	if brain := brainOf(attacker); brain != nil && brain.Blackboard.IsAvoiding {
		return RangedAborted
	}
	player, ok := ActivePlayer(e.World)
	if !ok {
		return RangedAborted
	}
	space := spaceOf(e.World)
	if space == nil {
		return RangedAborted
	}
	t, ok := positionOf(attacker)
	if !ok {
		return RangedAborted
	}
	pt, ok := positionOf(player)
	if !ok {
		return RangedAborted
	}

	rc := cfg.RangedHit
	start := t.Position.
		Add(t.Forward().Scale(rc.ForwardOffset)).
		Add(gamemath.Vec3(0, 0, rc.StartHeight))
	end := pt.Position.Add(gamemath.Vec3(0, 0, rc.TargetHeight))
	half := gamemath.Vec3(rc.BoxHalfSize[0], rc.BoxHalfSize[1], rc.BoxHalfSize[2])

	for _, cand := range sweepCandidates(space, start, end, half, attacker) {
		if !cand.HasComponent(tags.Player) {
			continue
		}
		if lineBlocked(space, start, end, attacker, cand) {
			continue
		}

		playShotEffects(e, attacker, start)
		if rollerOf(e.World).Float64() < rc.HitProbability {
			ApplyDamageTo(e, cand, attackDamage(attacker), start)
			return RangedHit
		}
		return RangedMiss
	}
	return RangedNoTarget
}

func attackDamage(attacker *donburi.Entry) float64 {
	if attacker.HasComponent(components.Status) {
		return components.Status.Get(attacker).AttackDamage
	}
	return cfg.Combat.DefaultAttackDamage
}

type sweepHit struct {
	entry *donburi.Entry
	t     float64
}

// sweepCandidates returns the characters touched by a box of half size
// swept from start to end, nearest first. A temporary resolv object covers
// the sweep on the ground plane; the 3D test runs on each overlap.
func sweepCandidates(space *resolv.Space, start, end, half vector.Vector, ignore *donburi.Entry) []*donburi.Entry {
	minX := math.Min(start[0], end[0]) - half[0]
	minY := math.Min(start[1], end[1]) - half[1]
	maxX := math.Max(start[0], end[0]) + half[0]
	maxY := math.Max(start[1], end[1]) + half[1]

	tempObj := resolv.NewObject(minX, minY, maxX-minX, maxY-minY)
	space.Add(tempObj)
	defer space.Remove(tempObj)

	collision := tempObj.Check(0, 0, tags.ResolvCharacter)
	if collision == nil {
		return nil
	}

	var hits []sweepHit
	for _, obj := range collision.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == ignore || !entry.Valid() {
			continue
		}
		b, ok := bodyBounds(entry)
		if !ok {
			continue
		}
		if frac, ok := gamemath.SegmentHit(start, end, b.Expand(half)); ok {
			hits = append(hits, sweepHit{entry: entry, t: frac})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	out := make([]*donburi.Entry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}

// lineBlocked traces start->end against blockers and the target. The
// attacker never blocks. Only a first hit on something other than the
// target counts as blocked.
func lineBlocked(space *resolv.Space, start, end vector.Vector, attacker, target *donburi.Entry) bool {
	nearest := math.Inf(1)
	var first *donburi.Entry

	consider := func(entry *donburi.Entry, b gamemath.Bounds) {
		if frac, ok := gamemath.SegmentHit(start, end, b); ok && frac < nearest {
			nearest = frac
			first = entry
		}
	}

	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvSolid) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == attacker || !entry.Valid() {
			continue
		}
		consider(entry, blockerBounds(obj, entry))
	}
	if b, ok := bodyBounds(target); ok {
		consider(target, b)
	}

	return first != nil && first != target
}

func bodyBounds(entry *donburi.Entry) (gamemath.Bounds, bool) {
	if !entry.HasComponent(components.Body) || !entry.HasComponent(components.Transform) {
		return gamemath.Bounds{}, false
	}
	return components.Body.Get(entry).Bounds(components.Transform.Get(entry)), true
}

func blockerBounds(obj *resolv.Object, entry *donburi.Entry) gamemath.Bounds {
	minZ, maxZ := cfg.Physics.GroundZ, math.Inf(1)
	if entry.HasComponent(components.Blocker) {
		b := components.Blocker.Get(entry)
		minZ, maxZ = b.MinZ, b.MaxZ
	}
	return gamemath.Bounds{
		Min: gamemath.Vec3(obj.X, obj.Y, minZ),
		Max: gamemath.Vec3(obj.X+obj.W, obj.Y+obj.H, maxZ),
	}
}

// playShotEffects spawns muzzle flash and shell eject at the weapon sockets
// and plays the shot sound at the muzzle. Without a weapon both sockets sit
// at fallback.
func playShotEffects(e *ecs.ECS, attacker *donburi.Entry, fallback vector.Vector) {
	muzzle, shell := fallback, fallback
	if m, s, ok := weaponSockets(attacker); ok {
		muzzle, shell = m, s
	}

	rc := cfg.RangedHit
	if rc.MuzzleFlash != cfg.EffectNone {
		events.SpawnEffectEvent.Publish(e.World, events.SpawnEffect{Effect: rc.MuzzleFlash, Location: muzzle})
	}
	if rc.ShellEject != cfg.EffectNone {
		events.SpawnEffectEvent.Publish(e.World, events.SpawnEffect{Effect: rc.ShellEject, Location: shell})
	}
	if rc.ShotSound != cfg.SoundNone {
		events.PlaySoundEvent.Publish(e.World, events.PlaySound{Sound: rc.ShotSound, Location: muzzle})
	}
}

// weaponSockets returns the world space muzzle and shell eject locations of
// the attacker's weapon.
func weaponSockets(attacker *donburi.Entry) (muzzle, shell vector.Vector, ok bool) {
	c := components.Combatant.Get(attacker)
	if c.Weapon == nil || !c.Weapon.Valid() {
		return nil, nil, false
	}
	t, ok := positionOf(attacker)
	if !ok {
		return nil, nil, false
	}
	wd := components.Weapon.Get(c.Weapon)
	muzzle = t.Position.Add(gamemath.RotateByYaw(wd.MuzzleOffset, t.Yaw))
	shell = t.Position.Add(gamemath.RotateByYaw(wd.ShellEjectOffset, t.Yaw))
	return muzzle, shell, true
}
