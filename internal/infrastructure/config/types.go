package config

import "math"

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig `json:"display"`
	Player  PlayerMotion  `json:"player"`
	Throw   ThrowConfig   `json:"throw"`
	Combat  CombatConfig  `json:"combat"`
	Boss    BossConfig    `json:"boss"`
	Camera  CameraConfig  `json:"camera"`
	Spawner SpawnerConfig `json:"spawner"`
	Audio   AudioConfig   `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth     int `json:"screenWidth"`
	ScreenHeight    int `json:"screenHeight"`
	Scale           int `json:"scale"`
	Framerate       int `json:"framerate"`
	InteractionRate int `json:"interactionRate"` // collision passes per second
}

// PlayerMotion holds character movement constants (px, px/tick)
type PlayerMotion struct {
	Speed        float64 `json:"speed"`
	GroundY      float64 `json:"groundY"`
	MaxJumps     int     `json:"maxJumps"`
	JumpVelocity float64 `json:"jumpVelocity"`
	RiseGravity  float64 `json:"riseGravity"`
	FallGravity  float64 `json:"fallGravity"`

	IntroVelocity float64 `json:"introVelocity"`
	IntroGravity  float64 `json:"introGravity"`

	DeathFallVelocity float64 `json:"deathFallVelocity"`
	DeathFallGravity  float64 `json:"deathFallGravity"`
	DeathFallLimit    float64 `json:"deathFallLimit"`

	MaxX        float64 `json:"maxX"`
	LeftMargin  float64 `json:"leftMargin"` // MinX = spawn x - LeftMargin
	StompBounce float64 `json:"stompBounce"`

	HurtWindow   float64 `json:"hurtWindow"`   // seconds
	SleepTimeout float64 `json:"sleepTimeout"` // seconds
}

// ThrowConfig configures bottle throwing and the thrown bottle's arc
type ThrowConfig struct {
	OffsetX  float64 `json:"offsetX"`
	OffsetY  float64 `json:"offsetY"`
	Cooldown float64 `json:"cooldown"` // seconds
	Cost     int     `json:"cost"`
	SpeedX   float64 `json:"speedX"`
	SpeedY   float64 `json:"speedY"`
	Gravity  float64 `json:"gravity"`
	GroundY  float64 `json:"groundY"`
}

type CombatConfig struct {
	ContactDamage    int     `json:"contactDamage"`
	PickupAmount     int     `json:"pickupAmount"`
	EnemyRemoveDelay float64 `json:"enemyRemoveDelay"` // seconds
}

type BossConfig struct {
	ActivationRange float64 `json:"activationRange"`
	AlertDelay      float64 `json:"alertDelay"` // seconds
	WalkStep        float64 `json:"walkStep"`
	WalkInterval    float64 `json:"walkInterval"` // seconds
	FallSpeed       float64 `json:"fallSpeed"`
	FallLimit       float64 `json:"fallLimit"`
	LethalHits      int     `json:"lethalHits"`
}

type CameraConfig struct {
	Padding      float64 `json:"padding"`
	WorldEnd     float64 `json:"worldEnd"`
	CullDistance float64 `json:"cullDistance"`
}

type SpawnerConfig struct {
	Interval       float64 `json:"interval"` // seconds
	MaxEnemies     int     `json:"maxEnemies"`
	DistanceAhead  float64 `json:"distanceAhead"`
	DistanceJitter float64 `json:"distanceJitter"`
	SmallChance    float64 `json:"smallChance"`
}

// AudioConfig maps cue names to playback volume (0-1)
type AudioConfig struct {
	Volumes map[string]float64 `json:"volumes"`
}

// Volume returns the configured volume of a cue, 0.5 if unset
func (a AudioConfig) Volume(cue string) float64 {
	if v, ok := a.Volumes[cue]; ok {
		return v
	}
	return 0.5
}

// Ticks converts a duration in seconds to simulation ticks.
// Positive durations never round down to zero.
func Ticks(seconds float64, framerate int) int {
	if seconds <= 0 {
		return 0
	}
	n := int(math.Round(seconds * float64(framerate)))
	if n < 1 {
		n = 1
	}
	return n
}

// Ticks converts seconds to ticks at the configured framerate
func (c *PhysicsConfig) Ticks(seconds float64) int {
	return Ticks(seconds, c.Display.Framerate)
}

// InteractionPeriod returns how many ticks separate two collision passes
func (c *PhysicsConfig) InteractionPeriod() int {
	if c.Display.InteractionRate <= 0 || c.Display.InteractionRate >= c.Display.Framerate {
		return 1
	}
	return c.Display.Framerate / c.Display.InteractionRate
}
