package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoss_TwoHitsLeaveAlive(t *testing.T) {
	b := NewBossState(3)
	b.Advance(BossWalking)

	assert.False(t, b.Hit())
	assert.False(t, b.Hit())
	assert.True(t, b.Alive())
	assert.Equal(t, BossWalking, b.Phase)
	assert.Equal(t, 33, b.HealthPercent())
}

func TestBoss_ThirdHitLethal(t *testing.T) {
	b := NewBossState(3)
	b.Hit()
	b.Hit()

	assert.True(t, b.Hit())
	assert.Equal(t, BossDying, b.Phase)
	assert.Equal(t, 0, b.HealthPercent())

	// Further hits are ignored
	assert.False(t, b.Hit())
	assert.Equal(t, 3, b.Hits)
}

func TestBoss_AdvanceMonotonic(t *testing.T) {
	b := NewBossState(3)

	assert.True(t, b.Advance(BossAlerting))
	assert.True(t, b.Activated())
	assert.False(t, b.Advance(BossDormant))
	assert.False(t, b.Advance(BossAlerting))
	assert.True(t, b.Advance(BossFallen))
	assert.False(t, b.Advance(BossDying))
	assert.Equal(t, BossFallen, b.Phase)
}

func TestBossPhase_String(t *testing.T) {
	assert.Equal(t, "dormant", BossDormant.String())
	assert.Equal(t, "fallen", BossFallen.String())
	assert.Equal(t, "unknown", BossPhase(42).String())
}

func TestPlayer_EnterHurtIdempotent(t *testing.T) {
	p := NewPlayerState(100)
	assert.True(t, p.EnterHurt(90))
	p.HurtTimer = 40
	assert.False(t, p.EnterHurt(90))
	assert.Equal(t, 40, p.HurtTimer)
}

func TestPlayer_WakeUp(t *testing.T) {
	p := NewPlayerState(100)
	p.IdleTicks = 300
	assert.False(t, p.WakeUp())
	assert.Equal(t, 0, p.IdleTicks)

	p.Sleeping = true
	assert.True(t, p.WakeUp())
	assert.False(t, p.Sleeping)
}

func TestProjectile_StepArc(t *testing.T) {
	b := &Body{X: 250, Y: 220}
	p := NewThrow(-1, 10, 8, 0.5)

	p.Step(b)
	assert.Equal(t, 240.0, b.X)
	assert.Equal(t, 212.0, b.Y)
	assert.Equal(t, 7.5, p.SpeedY)

	assert.True(t, p.Consume())
	assert.False(t, p.Consume())
}
