package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

func TestLoadLevel(t *testing.T) {
	r := newTestRig()
	LoadLevel(r.world, r.factory, 7)
	w := r.world

	require.True(t, w.Ready())
	assert.Len(t, w.Backgrounds, 4)
	assert.Len(t, w.Clouds, 3)
	assert.Len(t, w.Coins, 2)
	assert.Len(t, w.Bottles, 3)
	assert.Empty(t, w.Enemies)
	assert.NotNil(t, w.Enemies)

	assert.Equal(t, "bg/air", w.Backgrounds[0].Sprite)
	assert.Equal(t, "bg/first/1", w.Backgrounds[1].Sprite)
	assert.Equal(t, "bg/first/2", w.Backgrounds[3].Sprite)
	assert.Equal(t, 720.0, w.Backgrounds[2].X)

	for _, c := range w.Clouds {
		assert.GreaterOrEqual(t, c.Y, 30.0)
		assert.LessOrEqual(t, c.Y, 110.0)
		assert.Contains(t, []string{"cloud/0", "cloud/1"}, c.Sprite)
	}

	assert.Equal(t, 2800.0, w.Boss.X)
	assert.Equal(t, entity.BossDormant, w.Boss.Boss.Phase)
	assert.Equal(t, 200.0, w.Player.X)
	assert.Equal(t, -50.0, w.Player.Y)
	assert.True(t, w.Player.Physics.Falling)
	assert.Equal(t, 100.0, w.Player.Player.MinX)
}

func TestLoadLevel_SameSeedSameClouds(t *testing.T) {
	load := func() []float64 {
		cfg := createTestGameConfig()
		w := world.New()
		LoadLevel(w, NewFactory(cfg, testRNG()), 7)
		ys := make([]float64, 0, len(w.Clouds))
		for _, c := range w.Clouds {
			ys = append(ys, c.Y)
		}
		return ys
	}
	assert.Equal(t, load(), load())
}

func TestLoadLevel_ConfiguredEnemies(t *testing.T) {
	r := newTestRig()
	r.cfg.Level.Enemies = []config.EnemySpawnConfig{{Type: "chicken", X: 900}, {Type: "smallChicken", X: 1300}}
	LoadLevel(r.world, r.factory, 1)

	require.Len(t, r.world.Enemies, 2)
	assert.Equal(t, entity.KindChicken, r.world.Enemies[0].Kind)
	assert.Equal(t, 360.0, r.world.Enemies[0].Y)
	assert.Equal(t, entity.KindSmallChicken, r.world.Enemies[1].Kind)
	assert.Equal(t, 380.0, r.world.Enemies[1].Y)
}

func TestFactory_NewEnemy(t *testing.T) {
	r := newTestRig()
	assert.Nil(t, r.factory.NewEnemy(entity.KindCoin, 0))

	e := r.factory.NewEnemy(entity.KindSmallChicken, 500)
	require.NotNil(t, e)
	assert.GreaterOrEqual(t, e.Enemy.Speed, 0.2)
	assert.LessOrEqual(t, e.Enemy.Speed, 0.6)
	assert.GreaterOrEqual(t, e.Enemy.StartDelay, 0)
	assert.Less(t, e.Enemy.StartDelay, 60)
	assert.Equal(t, entity.AnimWalk, e.Anim.State)
}

func TestClipsFrom(t *testing.T) {
	cfg := createTestGameConfig()
	clips := ClipsFrom(cfg.Entities.Player, 60)

	assert.Len(t, clips, 6)
	assert.Equal(t, 6, clips[entity.AnimIdle].Period)
	assert.Equal(t, 12, clips[entity.AnimDead].Period)
	assert.True(t, clips[entity.AnimDead].Once)
	assert.Equal(t, "pepe/walk/5", clips[entity.AnimWalk].Frames[5])
}
