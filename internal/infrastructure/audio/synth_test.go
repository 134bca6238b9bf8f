package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pollo/internal/application/port"
)

func sample(pcm []byte, i int) (left, right int16) {
	left = int16(uint16(pcm[4*i]) | uint16(pcm[4*i+1])<<8)
	right = int16(uint16(pcm[4*i+2]) | uint16(pcm[4*i+3])<<8)
	return left, right
}

func TestSynthesize_Length(t *testing.T) {
	pcm := Synthesize(Tone{Freq: 440, EndFreq: 440, Duration: 0.5, Amp: 0.5})
	assert.Len(t, pcm, SampleRate/2*4)

	assert.Nil(t, Synthesize(Tone{Freq: 440, Duration: 0}))
}

func TestSynthesize_StereoAndAmplitude(t *testing.T) {
	pcm := Synthesize(Tone{Freq: 440, EndFreq: 440, Duration: 0.1, Amp: 0.5})
	n := len(pcm) / 4

	peak := int16(0)
	for i := 0; i < n; i++ {
		l, r := sample(pcm, i)
		require.Equal(t, l, r, "both channels carry the same sample")
		if l > peak {
			peak = l
		}
	}
	assert.LessOrEqual(t, int(peak), 32767/2+1)
	assert.Greater(t, int(peak), 32767/4)
}

func TestSynthesize_FadesOut(t *testing.T) {
	pcm := Synthesize(Tone{Freq: 440, EndFreq: 440, Duration: 0.1, Amp: 0.5})
	n := len(pcm) / 4

	l, _ := sample(pcm, n-1)
	assert.Less(t, abs(int(l)), 200)
}

func TestTones_EveryCueHasASound(t *testing.T) {
	for _, cue := range port.Cues {
		tone, ok := Tones[cue]
		if assert.True(t, ok, "cue %s", cue) {
			assert.Greater(t, tone.Duration, 0.0)
			assert.NotEmpty(t, Synthesize(tone))
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
