package system

import (
	"math/rand"

	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// SpawnerSystem adds chickens ahead of the player on a fixed interval
type SpawnerSystem struct {
	config  *config.GameConfig
	factory *Factory
	rng     *rand.Rand
}

// NewSpawnerSystem creates a new spawner system
func NewSpawnerSystem(cfg *config.GameConfig, factory *Factory, rng *rand.Rand) *SpawnerSystem {
	return &SpawnerSystem{
		config:  cfg,
		factory: factory,
		rng:     rng,
	}
}

// Spawn adds one chicken unless the enemy cap is reached.
// It returns the new enemy, or nil.
func (s *SpawnerSystem) Spawn(w *world.World) *entity.Entity {
	if w.GameOver || w.Player == nil {
		return nil
	}
	sc := s.config.Physics.Spawner
	if len(w.Enemies) >= sc.MaxEnemies {
		return nil
	}

	kind := entity.KindChicken
	if s.rng.Float64() < sc.SmallChance {
		kind = entity.KindSmallChicken
	}
	x := w.Player.X + sc.DistanceAhead + s.rng.Float64()*sc.DistanceJitter

	e := s.factory.NewEnemy(kind, x)
	if e == nil {
		return nil
	}
	return w.Add(e)
}
