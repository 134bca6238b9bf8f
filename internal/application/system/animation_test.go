package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pollo/internal/domain/entity"
)

func TestPlayerClip_Priority(t *testing.T) {
	r := newTestRig()
	p := r.addGroundedPlayer(200)
	pl := p.Player

	pl.Main = entity.AnimWalk
	assert.Equal(t, entity.AnimWalk, PlayerClip(p))

	pl.Main = entity.AnimNone
	assert.Equal(t, entity.AnimIdle, PlayerClip(p))

	pl.Sleeping = true
	assert.Equal(t, entity.AnimSleep, PlayerClip(p))

	pl.Hurt = true
	assert.Equal(t, entity.AnimHurt, PlayerClip(p))

	pl.Dying = true
	assert.Equal(t, entity.AnimDead, PlayerClip(p))
}

func TestAnimationSystem_SwitchesAndAdvances(t *testing.T) {
	r := newTestRig()
	p := r.addGroundedPlayer(200)
	r.addBoss()
	p.Player.Main = entity.AnimWalk

	r.animation.Update(r.world)
	assert.Equal(t, entity.AnimWalk, p.Anim.State)
	assert.Equal(t, "pepe/walk/0", p.Sprite)

	for i := 0; i < 6; i++ {
		r.animation.Update(r.world)
	}
	assert.Equal(t, "pepe/walk/1", p.Sprite)
}

func TestAnimationSystem_UnreadyFrameKeepsSprite(t *testing.T) {
	r := newTestRig()
	p := r.addGroundedPlayer(200)
	r.addBoss()
	require.Equal(t, "pepe/jump/0", p.Sprite)
	r.sprites.missing["pepe/idle/0"] = true
	p.Player.Main = entity.AnimIdle

	r.animation.Update(r.world)
	assert.Equal(t, "pepe/jump/0", p.Sprite)

	for i := 0; i < 6; i++ {
		r.animation.Update(r.world)
	}
	assert.Equal(t, "pepe/idle/1", p.Sprite)
}

func TestAnimationSystem_DeadNeverLeavesDeadClip(t *testing.T) {
	r := newTestRig()
	p := r.addGroundedPlayer(200)
	r.addBoss()
	c := r.addChicken(500)

	p.Player.Dying = true
	c.Kill(24)
	r.animation.Update(r.world)
	require.Equal(t, entity.AnimDead, p.Anim.State)
	assert.Equal(t, entity.AnimDead, c.Anim.State)
	assert.Equal(t, "chicken/dead/0", c.Sprite)

	p.Player.Dying = false
	p.Player.Main = entity.AnimWalk
	r.animation.Update(r.world)
	assert.Equal(t, entity.AnimDead, p.Anim.State)
}

func TestAnimationSystem_BossClips(t *testing.T) {
	r := newTestRig()
	boss := r.addBoss()

	r.animation.Update(r.world)
	assert.Equal(t, entity.AnimAlert, boss.Anim.State)
	assert.False(t, boss.Anim.Paused)

	boss.Boss.Advance(entity.BossAlerting)
	r.animation.Update(r.world)
	assert.True(t, boss.Anim.Paused)
	frozen := boss.Sprite
	for i := 0; i < 30; i++ {
		r.animation.Update(r.world)
	}
	assert.Equal(t, frozen, boss.Sprite)

	boss.Boss.Advance(entity.BossWalking)
	r.animation.Update(r.world)
	assert.Equal(t, entity.AnimWalk, boss.Anim.State)
	assert.Equal(t, "boss/walk/0", boss.Sprite)
}
