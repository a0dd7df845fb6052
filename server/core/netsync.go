package core

import (
	"log"

	"github.com/automoto/xv-arena/components"
	"github.com/automoto/xv-arena/shared/netcomponents"
	"github.com/automoto/xv-arena/systems"
	"github.com/automoto/xv-arena/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// Step advances the simulation one tick and refreshes the synced state.
// It must only be called from the game loop.
func (s *Server) Step() {
	s.ProcessCommands()
	s.applyInputs()
	s.ecs.Update()
	s.syncNew()
	s.mirror()
}

func (s *Server) createGameState() {
	entity := s.world.Create(netcomponents.NetGameState)
	netcomponents.NetGameState.SetValue(s.world.Entry(entity), netcomponents.NetGameStateData{
		Arena:    s.arena.Name,
		Dilation: 1,
	})
	if err := srvsync.NetworkSync(s.world, &entity, netcomponents.NetGameState); err != nil {
		log.Printf("Failed to sync game state: %v", err)
	}
	s.gameState = entity
}

func (s *Server) syncPlayer(entity *donburi.Entity) error {
	entry := s.world.Entry(*entity)
	donburi.Add(entry, netcomponents.NetPosition, &netcomponents.NetPositionData{})
	donburi.Add(entry, netcomponents.NetVelocity, &netcomponents.NetVelocityData{})
	donburi.Add(entry, netcomponents.NetPlayerState, &netcomponents.NetPlayerStateData{})
	mirrorBody(entry)

	return srvsync.NetworkSync(s.world, entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetPlayerState,
	)
}

// syncNew registers combatants and pickups the sim created since the last
// tick, such as arena enemies and dropped loot.
func (s *Server) syncNew() {
	var enemies, items []donburi.Entity
	tags.Enemy.Each(s.world, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetEnemy) {
			enemies = append(enemies, entry.Entity())
		}
	})
	tags.Pickup.Each(s.world, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetItem) {
			items = append(items, entry.Entity())
		}
	})

	for _, entity := range enemies {
		entry := s.world.Entry(entity)
		donburi.Add(entry, netcomponents.NetPosition, &netcomponents.NetPositionData{})
		donburi.Add(entry, netcomponents.NetEnemy, &netcomponents.NetEnemyData{})
		mirrorBody(entry)
		mirrorEnemy(entry)
		err := srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetEnemy),
		)
		if err != nil {
			log.Printf("Failed to sync enemy: %v", err)
		}
	}

	for _, entity := range items {
		entry := s.world.Entry(entity)
		item := components.Item.Get(entry)
		donburi.Add(entry, netcomponents.NetPosition, &netcomponents.NetPositionData{})
		donburi.Add(entry, netcomponents.NetItem, &netcomponents.NetItemData{ID: item.ID, Class: item.Class})
		mirrorBody(entry)
		err := srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetPosition),
			netcomponents.NetItem,
		)
		if err != nil {
			log.Printf("Failed to sync item: %v", err)
		}
	}
}

// mirror copies simulation state into the network components.
func (s *Server) mirror() {
	s.mu.Lock()
	sequences := make(map[donburi.Entity]uint32, len(s.clients))
	for _, cs := range s.clients {
		sequences[cs.entity] = cs.prev.Sequence
	}
	s.mu.Unlock()

	alive := 0
	netcomponents.NetEnemy.Each(s.world, func(entry *donburi.Entry) {
		mirrorBody(entry)
		mirrorEnemy(entry)
		if !components.Combatant.Get(entry).IsDead {
			alive++
		}
	})

	netcomponents.NetItem.Each(s.world, func(entry *donburi.Entry) {
		mirrorBody(entry)
		netcomponents.NetItem.Get(entry).Grounded = components.Item.Get(entry).Grounded
	})

	netcomponents.NetPlayerState.Each(s.world, func(entry *donburi.Entry) {
		mirrorBody(entry)
		p := components.Player.Get(entry)
		state := netcomponents.NetPlayerState.Get(entry)
		state.Health = p.Health
		state.MaxHealth = p.MaxHealth
		state.Potions = p.HealthPotionCount
		state.CurrentItem = p.CurrentItem
		state.Weapon = int(p.Weapon)
		state.IsDead = p.IsDie
		state.LastSequence = sequences[entry.Entity()]
	})

	if s.world.Valid(s.gameState) {
		gs := netcomponents.NetGameState.Get(s.world.Entry(s.gameState))
		gs.Enemies = alive
		if clock := systems.GetClock(s.world); clock != nil {
			gs.Dilation = clock.Dilation
		}
		if d, ok := components.Director.First(s.world); ok {
			dd := components.Director.Get(d)
			gs.Kills = dd.Kills
			gs.BossKills = dd.BossKills
			s.mu.Lock()
			s.kills = dd.Kills
			s.mu.Unlock()
		}
	}
}

func mirrorBody(entry *donburi.Entry) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	t := components.Transform.Get(entry)
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{
		X:   t.Position[0],
		Y:   t.Position[1],
		Z:   t.Position[2],
		Yaw: t.Yaw,
	})
	if entry.HasComponent(components.Movement) && entry.HasComponent(netcomponents.NetVelocity) {
		v := components.Movement.Get(entry).Velocity
		if len(v) >= 2 {
			netcomponents.NetVelocity.SetValue(entry, netcomponents.NewNetVelocity(v[0], v[1]))
		}
	}
}

func mirrorEnemy(entry *donburi.Entry) {
	c := components.Combatant.Get(entry)
	state := netcomponents.CombatAlive
	switch c.State() {
	case components.StateAvoiding:
		state = netcomponents.CombatAvoiding
	case components.StateDead:
		state = netcomponents.CombatDead
	}
	visible := true
	if entry.HasComponent(components.Body) {
		visible = components.Body.Get(entry).Visible()
	}
	netcomponents.NetEnemy.SetValue(entry, netcomponents.NetEnemyData{
		TypeName:  c.TypeName,
		State:     state,
		Health:    c.Health,
		MaxHealth: c.MaxHealth,
		IsBoss:    c.IsBoss,
		Visible:   visible,
	})
}
