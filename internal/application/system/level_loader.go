package system

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/younwookim/pollo/internal/domain/entity"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Factory builds entities from entities.json
type Factory struct {
	config *config.GameConfig
	rng    *rand.Rand
}

// NewFactory creates a new entity factory
func NewFactory(cfg *config.GameConfig, rng *rand.Rand) *Factory {
	return &Factory{config: cfg, rng: rng}
}

// ClipsFrom converts configured animations into animator clips
func ClipsFrom(ec config.EntityConfig, framerate int) map[entity.AnimState]entity.Clip {
	clips := make(map[entity.AnimState]entity.Clip, len(ec.Animations))
	for name, anim := range ec.Animations {
		state := entity.ParseAnimState(name)
		if state == entity.AnimNone {
			continue
		}
		clips[state] = entity.Clip{
			Frames: anim.FrameKeys(),
			Period: anim.PeriodTicks(framerate),
			Once:   anim.Once,
		}
	}
	return clips
}

func hitboxFrom(r *config.Rect) *entity.HitboxRect {
	if r == nil {
		return nil
	}
	return &entity.HitboxRect{OffsetX: r.OffsetX, OffsetY: r.OffsetY, Width: r.Width, Height: r.Height}
}

func (f *Factory) build(kind entity.Kind, ec config.EntityConfig, x, y float64, initial entity.AnimState) *entity.Entity {
	e := &entity.Entity{
		Kind:    kind,
		Body:    entity.Body{X: x, Y: y, Width: ec.Width, Height: ec.Height},
		Hitbox:  hitboxFrom(ec.Hitbox),
		Visible: true,
	}
	if len(ec.Animations) > 0 {
		e.Anim = entity.NewAnimator(ClipsFrom(ec, f.config.Physics.Display.Framerate), initial)
		e.Sprite = e.Anim.FirstFrame(initial)
	}
	return e
}

// NewPlayer creates the character at the level spawn, ready for the intro drop
func (f *Factory) NewPlayer(x, y float64) *entity.Entity {
	pm := f.config.Physics.Player
	e := f.build(entity.KindPlayer, f.config.Entities.Player, x, y, entity.AnimJump)
	e.Physics = &entity.Physics{
		VelocityY: pm.IntroVelocity,
		Speed:     pm.Speed,
		GroundY:   pm.GroundY,
		MaxJumps:  pm.MaxJumps,
		Falling:   true,
	}
	e.Player = entity.NewPlayerState(x - pm.LeftMargin)
	e.Player.Main = entity.AnimJump
	return e
}

// NewBoss creates a dormant endboss
func (f *Factory) NewBoss(x, y float64) *entity.Entity {
	e := f.build(entity.KindEndboss, f.config.Entities.Boss, x, y, entity.AnimAlert)
	e.Boss = entity.NewBossState(f.config.Physics.Boss.LethalHits)
	return e
}

// EnemyKey returns the entities.json key of a chicken kind
func EnemyKey(kind entity.Kind) string {
	if kind == entity.KindSmallChicken {
		return "smallChicken"
	}
	return "chicken"
}

// NewEnemy creates a chicken of the given kind at x.
// It returns nil for kinds that are not chickens or have no config.
func (f *Factory) NewEnemy(kind entity.Kind, x float64) *entity.Entity {
	if !kind.IsChickenType() {
		return nil
	}
	ec, ok := f.config.Entities.Enemies[EnemyKey(kind)]
	if !ok {
		return nil
	}

	e := f.build(kind, ec.EntityConfig, x, ec.Y, entity.AnimWalk)
	e.Enemy = &entity.Enemy{
		Speed:         ec.Speed.Pick(f.rng.Float64()),
		StartDelay:    int(f.rng.Float64() * float64(f.config.Physics.Ticks(ec.StartDelayMax))),
		RespawnX:      ec.RespawnX,
		RespawnJitter: ec.RespawnJitter,
	}
	return e
}

// NewCoin creates a coin pickup
func (f *Factory) NewCoin(x, y float64) *entity.Entity {
	return f.build(entity.KindCoin, f.config.Entities.Pickups["coin"], x, y, entity.AnimIdle)
}

// NewBottle creates a bottle lying on the ground
func (f *Factory) NewBottle(x, y float64) *entity.Entity {
	return f.build(entity.KindBottle, f.config.Entities.Pickups["bottle"], x, y, entity.AnimIdle)
}

// NewThrowable creates a thrown bottle moving in dir (-1 or 1)
func (f *Factory) NewThrowable(x, y, dir float64) *entity.Entity {
	tc := f.config.Physics.Throw
	e := f.build(entity.KindThrowable, f.config.Entities.Projectiles["bottle"], x, y, entity.AnimIdle)
	e.Projectile = entity.NewThrow(dir, tc.SpeedX, tc.SpeedY, tc.Gravity)
	return e
}

// NewCloud creates a drifting cloud
func (f *Factory) NewCloud(x, y float64, sprite string) *entity.Entity {
	cc := f.config.Level.Clouds
	ec := f.config.Entities.Clouds
	return &entity.Entity{
		Kind:    entity.KindCloud,
		Body:    entity.Body{X: x, Y: y, Width: ec.Width, Height: ec.Height},
		Sprite:  sprite,
		Visible: true,
		Drift: &entity.Drift{
			Speed:  cc.Speed.Pick(f.rng.Float64()),
			WrapX:  cc.WrapX,
			Jitter: cc.WrapJitter,
		},
	}
}

// NewBackground creates a static background tile
func (f *Factory) NewBackground(x float64, sprite string) *entity.Entity {
	bg := f.config.Level.Background
	return &entity.Entity{
		Kind:    entity.KindBackground,
		Body:    entity.Body{X: x, Y: 0, Width: bg.TileWidth, Height: bg.TileHeight},
		Sprite:  sprite,
		Visible: true,
	}
}

// LoadLevel populates an empty world from level.json.
// Cloud heights follow a perlin noise band seeded with seed.
func LoadLevel(w *world.World, f *Factory, seed int64) {
	lvl := f.config.Level

	bg := lvl.Background
	for i := 0; i < bg.Repeats; i++ {
		x := float64(i) * bg.TileWidth
		for _, layer := range bg.Layers {
			w.Add(f.NewBackground(x, layer.LayerSprite(i)))
		}
	}

	cc := lvl.Clouds
	noise := perlin.NewPerlin(2, 2, 3, seed)
	for i := 0; i < cc.Count; i++ {
		x := float64(i)*cc.Spacing + f.rng.Float64()*cc.Jitter
		y := cc.BaseY + cloudHeight(noise, i)*cc.HeightRange
		sprite := ""
		if len(cc.Variants) > 0 {
			sprite = cc.Variants[f.rng.Intn(len(cc.Variants))]
		}
		w.Add(f.NewCloud(x, y, sprite))
	}

	for _, pos := range lvl.Coins {
		w.Add(f.NewCoin(pos.X, pos.Y))
	}
	for _, x := range lvl.Bottles.X {
		w.Add(f.NewBottle(x, lvl.Bottles.Y))
	}

	for _, spawn := range lvl.Enemies {
		kind := entity.KindChicken
		if spawn.Type == "smallChicken" {
			kind = entity.KindSmallChicken
		}
		if e := f.NewEnemy(kind, spawn.X); e != nil {
			w.Add(e)
		}
	}

	w.Add(f.NewBoss(lvl.Boss.X, lvl.Boss.Y))
	w.Add(f.NewPlayer(lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y))
}

// cloudHeight samples the noise band for cloud i, normalised to [0, 1]
func cloudHeight(noise *perlin.Perlin, i int) float64 {
	v := (noise.Noise2D(float64(i)*0.37+0.1, 0.5) + 1) / 2
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
