package audio

import (
	"math"

	"github.com/younwookim/pollo/internal/application/port"
)

// SampleRate of every synthesised cue
const SampleRate = 44100

// Tone is a sine sweep from Freq to EndFreq
type Tone struct {
	Freq     float64
	EndFreq  float64
	Duration float64 // seconds
	Amp      float64
}

// Tones maps each cue to its sound
var Tones = map[port.Cue]Tone{
	port.CueWalk:     {Freq: 160, EndFreq: 140, Duration: 0.3, Amp: 0.15},
	port.CueJump:     {Freq: 420, EndFreq: 780, Duration: 0.14, Amp: 0.3},
	port.CueHurt:     {Freq: 260, EndFreq: 180, Duration: 0.2, Amp: 0.35},
	port.CueDead:     {Freq: 300, EndFreq: 80, Duration: 0.7, Amp: 0.35},
	port.CueStomp:    {Freq: 340, EndFreq: 200, Duration: 0.08, Amp: 0.35},
	port.CueCoin:     {Freq: 1100, EndFreq: 1500, Duration: 0.1, Amp: 0.25},
	port.CueBottle:   {Freq: 700, EndFreq: 900, Duration: 0.1, Amp: 0.25},
	port.CueThrow:    {Freq: 600, EndFreq: 380, Duration: 0.12, Amp: 0.25},
	port.CueSnore:    {Freq: 70, EndFreq: 110, Duration: 1.2, Amp: 0.2},
	port.CueCluck:    {Freq: 800, EndFreq: 520, Duration: 0.18, Amp: 0.3},
	port.CueVictory:  {Freq: 520, EndFreq: 1040, Duration: 0.9, Amp: 0.3},
	port.CueGameOver: {Freq: 220, EndFreq: 110, Duration: 1.0, Amp: 0.3},
}

// Synthesize renders the tone as 16-bit little-endian stereo PCM.
// The last fifth fades out so one-shot cues end without a click.
func Synthesize(t Tone) []byte {
	n := int(float64(SampleRate) * t.Duration)
	if n <= 0 {
		return nil
	}
	pcm := make([]byte, n*4)
	fadeFrom := n - n/5

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		phase += 2 * math.Pi * freq / SampleRate

		amp := t.Amp
		if i >= fadeFrom {
			amp *= float64(n-i) / float64(n-fadeFrom)
		}
		s := int16(math.Sin(phase) * amp * math.MaxInt16)

		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}
