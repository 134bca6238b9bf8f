// Package port declares what the simulation needs from its surroundings.
// Implementations live under internal/infrastructure; tests use fakes.
package port

// Cue names a sound effect
type Cue string

const (
	CueWalk     Cue = "walk"
	CueJump     Cue = "jump"
	CueHurt     Cue = "hurt"
	CueDead     Cue = "dead"
	CueStomp    Cue = "stomp"
	CueCoin     Cue = "coin"
	CueBottle   Cue = "bottle"
	CueThrow    Cue = "throw"
	CueSnore    Cue = "snore"
	CueCluck    Cue = "cluck"
	CueVictory  Cue = "victory"
	CueGameOver Cue = "gameover"
)

// Cues lists every cue the simulation may play
var Cues = []Cue{CueWalk, CueJump, CueHurt, CueDead, CueStomp, CueCoin, CueBottle, CueThrow, CueSnore, CueCluck, CueVictory, CueGameOver}

// Looping returns true for cues that repeat until stopped
func (c Cue) Looping() bool {
	return c == CueWalk || c == CueSnore
}

// Audio plays sound cues. Calls are fire-and-forget; failures are absorbed
// by the implementation. Playing a looping cue that is already playing is
// a no-op.
type Audio interface {
	Play(cue Cue, volume float64)
	Stop(cue Cue)
	SetMuted(muted bool)
	Muted() bool
}

// Screen receives discrete match notifications
type Screen interface {
	OnGameOver()
	OnVictory()
	OnHealthChanged(pct int)
	OnCoinsChanged(pct int)
	OnBottlesChanged(pct int)
	OnBossHealthChanged(pct int)
}

// Settings persists the mute flag
type Settings interface {
	LoadMuted() (bool, error)
	SaveMuted(muted bool) error
}

// Sprites reports whether a sprite key can be displayed yet
type Sprites interface {
	Ready(key string) bool
}

// NopAudio discards every call
type NopAudio struct {
	muted bool
}

func (a *NopAudio) Play(Cue, float64)   {}
func (a *NopAudio) Stop(Cue)            {}
func (a *NopAudio) SetMuted(muted bool) { a.muted = muted }
func (a *NopAudio) Muted() bool         { return a.muted }
