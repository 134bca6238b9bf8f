package system

import (
	"math/rand"

	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func anim(sprite string, frames, ms int, once bool) config.AnimationConfig {
	return config.AnimationConfig{Sprite: sprite, Frames: frames, IntervalMs: ms, Once: once}
}

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Display: config.DisplayConfig{ScreenWidth: 720, ScreenHeight: 480, Scale: 1, Framerate: 60, InteractionRate: 30},
			Player: config.PlayerMotion{
				Speed:             5,
				GroundY:           140,
				MaxJumps:          2,
				JumpVelocity:      -11,
				RiseGravity:       0.4,
				FallGravity:       0.8,
				IntroVelocity:     2,
				IntroGravity:      0.4,
				DeathFallVelocity: 5,
				DeathFallGravity:  1.2,
				DeathFallLimit:    600,
				MaxX:              3000,
				LeftMargin:        100,
				StompBounce:       -5,
				HurtWindow:        1.5,
				SleepTimeout:      8,
			},
			Throw: config.ThrowConfig{
				OffsetX: 50, OffsetY: 80, Cooldown: 0.5, Cost: 20,
				SpeedX: 10, SpeedY: 8, Gravity: 0.5, GroundY: 400,
			},
			Combat: config.CombatConfig{ContactDamage: 15, PickupAmount: 20, EnemyRemoveDelay: 0.4},
			Boss: config.BossConfig{
				ActivationRange: 700, AlertDelay: 3, WalkStep: 3, WalkInterval: 0.1,
				FallSpeed: 5, FallLimit: 500, LethalHits: 3,
			},
			Camera:  config.CameraConfig{Padding: 100, WorldEnd: 3000, CullDistance: 500},
			Spawner: config.SpawnerConfig{Interval: 2, MaxEnemies: 7, DistanceAhead: 720, DistanceJitter: 300, SmallChance: 0.5},
		},
		Entities: &config.EntitiesConfig{
			Player: config.EntityConfig{
				Width: 140, Height: 300,
				Hitbox: &config.Rect{OffsetX: 35, OffsetY: 120, Width: 60, Height: 165},
				Animations: map[string]config.AnimationConfig{
					"idle":  anim("pepe/idle", 10, 100, false),
					"walk":  anim("pepe/walk", 6, 100, false),
					"jump":  anim("pepe/jump", 9, 100, false),
					"hurt":  anim("pepe/hurt", 3, 300, false),
					"sleep": anim("pepe/sleep", 10, 200, false),
					"dead":  anim("pepe/dead", 7, 200, true),
				},
			},
			Boss: config.EntityConfig{
				Width: 360, Height: 400,
				Hitbox: &config.Rect{OffsetX: 66, OffsetY: 80, Width: 240, Height: 300},
				Animations: map[string]config.AnimationConfig{
					"alert": anim("boss/alert", 8, 200, false),
					"walk":  anim("boss/walk", 4, 100, false),
					"dead":  anim("boss/dead", 3, 250, true),
				},
			},
			Enemies: map[string]config.EnemyConfig{
				"chicken": {
					EntityConfig: config.EntityConfig{
						Width: 80, Height: 70,
						Hitbox: &config.Rect{OffsetX: 8, OffsetY: 6, Width: 72, Height: 62},
						Animations: map[string]config.AnimationConfig{
							"walk": anim("chicken/walk", 3, 150, false),
							"dead": anim("chicken/dead", 1, 150, true),
						},
					},
					Y: 360, Speed: config.RangeConfig{Min: 0.3, Max: 0.5},
					StartDelayMax: 1, RespawnX: 750, RespawnJitter: 200,
				},
				"smallChicken": {
					EntityConfig: config.EntityConfig{
						Width: 50, Height: 50,
						Hitbox: &config.Rect{OffsetX: 10, OffsetY: 10, Width: 30, Height: 30},
						Animations: map[string]config.AnimationConfig{
							"walk": anim("chicken_small/walk", 3, 150, false),
							"dead": anim("chicken_small/dead", 1, 150, true),
						},
					},
					Y: 380, Speed: config.RangeConfig{Min: 0.2, Max: 0.6},
					StartDelayMax: 1, RespawnX: 750, RespawnJitter: 200,
				},
			},
			Pickups: map[string]config.EntityConfig{
				"coin": {
					Width: 150, Height: 150,
					Hitbox:     &config.Rect{OffsetX: 50, OffsetY: 50, Width: 50, Height: 50},
					Animations: map[string]config.AnimationConfig{"idle": anim("coin", 2, 300, false)},
				},
				"bottle": {
					Width: 70, Height: 80,
					Hitbox:     &config.Rect{OffsetX: 32, OffsetY: 18, Width: 20, Height: 60},
					Animations: map[string]config.AnimationConfig{"idle": anim("bottle/ground", 1, 1000, false)},
				},
			},
			Projectiles: map[string]config.EntityConfig{
				"bottle": {
					Width: 50, Height: 50,
					Animations: map[string]config.AnimationConfig{"idle": anim("bottle/rotation", 4, 100, false)},
				},
			},
			Clouds: config.EntityConfig{Width: 500, Height: 200},
		},
		Level: &config.LevelConfig{
			ID:          "test",
			PlayerSpawn: config.PositionConfig{X: 200, Y: -50},
			Boss:        config.PositionConfig{X: 2800, Y: 50},
			Coins:       []config.PositionConfig{{X: 800, Y: 80}, {X: 1200, Y: 100}},
			Bottles:     config.BottleRowConfig{X: []float64{1000, 1400, 1800}, Y: 350},
			Background: config.BackgroundConfig{
				TileWidth: 720, TileHeight: 480, Repeats: 2,
				Layers: []config.LayerConfig{{Sprite: "bg/air"}, {Sprite: "bg/first", Alternate: true}},
			},
			Clouds: config.CloudsConfig{
				Count: 3, Spacing: 400, Jitter: 200, BaseY: 30, HeightRange: 80,
				Speed: config.RangeConfig{Min: 0.1, Max: 0.25}, WrapX: 7200, WrapJitter: 500,
				Variants: []string{"cloud/0", "cloud/1"},
			},
		},
	}
}

type recordingAudio struct {
	played  []port.Cue
	stopped []port.Cue
	muted   bool
}

func (a *recordingAudio) Play(cue port.Cue, _ float64) { a.played = append(a.played, cue) }
func (a *recordingAudio) Stop(cue port.Cue)            { a.stopped = append(a.stopped, cue) }
func (a *recordingAudio) SetMuted(m bool)              { a.muted = m }
func (a *recordingAudio) Muted() bool                  { return a.muted }

func (a *recordingAudio) count(cue port.Cue) int {
	n := 0
	for _, c := range a.played {
		if c == cue {
			n++
		}
	}
	return n
}

type recordingScreen struct {
	gameOver int
	victory  int
	health   []int
	coins    []int
	bottles  []int
	boss     []int
}

func (s *recordingScreen) OnGameOver()                 { s.gameOver++ }
func (s *recordingScreen) OnVictory()                  { s.victory++ }
func (s *recordingScreen) OnHealthChanged(pct int)     { s.health = append(s.health, pct) }
func (s *recordingScreen) OnCoinsChanged(pct int)      { s.coins = append(s.coins, pct) }
func (s *recordingScreen) OnBottlesChanged(pct int)    { s.bottles = append(s.bottles, pct) }
func (s *recordingScreen) OnBossHealthChanged(pct int) { s.boss = append(s.boss, pct) }

// fakeSprites reports every key ready except the listed ones
type fakeSprites struct {
	missing map[string]bool
}

func (f *fakeSprites) Ready(key string) bool { return !f.missing[key] }

// testRig bundles a world with every system wired to recording fakes
type testRig struct {
	cfg        *config.GameConfig
	world      *world.World
	audio      *recordingAudio
	screen     *recordingScreen
	sprites    *fakeSprites
	factory    *Factory
	physics    *PhysicsSystem
	combat     *CombatSystem
	boss       *BossSystem
	animation  *AnimationSystem
	controller *PlayerController
}

func newTestRig() *testRig {
	cfg := createTestGameConfig()
	rng := testRNG()
	r := &testRig{
		cfg:     cfg,
		world:   world.New(),
		audio:   &recordingAudio{},
		screen:  &recordingScreen{},
		sprites: &fakeSprites{missing: map[string]bool{}},
	}
	r.factory = NewFactory(cfg, rng)
	r.physics = NewPhysicsSystem(cfg, rng, r.screen)
	r.combat = NewCombatSystem(cfg, r.audio, r.screen)
	r.boss = NewBossSystem(cfg, r.physics, r.screen)
	r.animation = NewAnimationSystem(r.sprites)
	r.controller = NewPlayerController(cfg, r.physics, r.factory, r.audio, r.screen)
	return r
}

// addGroundedPlayer adds a player standing on the ground at x
func (r *testRig) addGroundedPlayer(x float64) *entity.Entity {
	p := r.factory.NewPlayer(x, r.cfg.Physics.Player.GroundY)
	p.Physics.Falling = false
	p.Physics.VelocityY = 0
	return r.world.Add(p)
}

func (r *testRig) addBoss() *entity.Entity {
	return r.world.Add(r.factory.NewBoss(2800, 50))
}

// addChicken adds a chicken that starts walking immediately
func (r *testRig) addChicken(x float64) *entity.Entity {
	e := r.factory.NewEnemy(entity.KindChicken, x)
	e.Enemy.StartDelay = 0
	return r.world.Add(e)
}
