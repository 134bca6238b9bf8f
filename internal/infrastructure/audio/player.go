// Package audio plays the game's sound cues through ebiten's audio context.
package audio

import (
	"bytes"
	"fmt"
	"log"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/pollo/internal/application/port"
)

// stream is the part of *ebaudio.Player the cue player drives
type stream interface {
	IsPlaying() bool
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

// Player implements port.Audio with one ebiten player per cue.
// Looping cues keep playing until stopped; Play on a cue that is already
// looping does nothing.
type Player struct {
	players map[port.Cue]stream
	muted   bool
	warned  map[port.Cue]bool
	logf    func(format string, args ...any)
}

func newPlayer() *Player {
	return &Player{
		players: make(map[port.Cue]stream, len(Tones)),
		warned:  make(map[port.Cue]bool),
		logf:    log.Printf,
	}
}

// New synthesises every cue and creates its player
func New(ctx *ebaudio.Context) (*Player, error) {
	p := newPlayer()
	for _, cue := range port.Cues {
		tone, ok := Tones[cue]
		if !ok {
			continue
		}
		pcm := Synthesize(tone)
		src := bytes.NewReader(pcm)

		var (
			ap  *ebaudio.Player
			err error
		)
		if cue.Looping() {
			ap, err = ctx.NewPlayer(ebaudio.NewInfiniteLoop(src, int64(len(pcm))))
		} else {
			ap, err = ctx.NewPlayer(src)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create player for %s: %w", cue, err)
		}
		p.players[cue] = ap
	}
	return p, nil
}

// NewContext creates the shared audio context at the synth sample rate
func NewContext() *ebaudio.Context {
	return ebaudio.NewContext(SampleRate)
}

// Play starts a cue at the given volume (0..1)
func (p *Player) Play(cue port.Cue, volume float64) {
	if p.muted {
		return
	}
	ap, ok := p.players[cue]
	if !ok {
		p.warn(cue, "unknown cue")
		return
	}
	if cue.Looping() && ap.IsPlaying() {
		return
	}
	ap.SetVolume(volume)
	if !cue.Looping() {
		if err := ap.Rewind(); err != nil {
			p.warn(cue, err.Error())
			return
		}
	}
	ap.Play()
}

// Stop pauses a cue and rewinds it
func (p *Player) Stop(cue port.Cue) {
	ap, ok := p.players[cue]
	if !ok || !ap.IsPlaying() {
		return
	}
	ap.Pause()
	if err := ap.Rewind(); err != nil {
		p.warn(cue, err.Error())
	}
}

// SetMuted silences every cue. Muting also stops whatever is playing.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if !muted {
		return
	}
	for cue := range p.players {
		p.Stop(cue)
	}
}

func (p *Player) Muted() bool {
	return p.muted
}

// warn logs a playback failure once per cue
func (p *Player) warn(cue port.Cue, msg string) {
	if p.warned[cue] {
		return
	}
	p.warned[cue] = true
	p.logf("audio: %s: %s", cue, msg)
}
