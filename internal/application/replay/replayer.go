package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/pollo/internal/application/system"
)

// Version of the replay file format
const Version = "1.0"

// Capture converts the keyboard state of frame f into a FrameInput
func Capture(f int, kb system.Keyboard) FrameInput {
	return FrameInput{
		F: f,
		R: kb.Pressed(system.KeyRight),
		L: kb.Pressed(system.KeyLeft),
		S: kb.Pressed(system.KeySpace),
		D: kb.Pressed(system.KeyThrow),
	}
}

// Apply writes the recorded flags into kb
func (fi FrameInput) Apply(kb system.Keyboard) {
	kb.Set(system.KeyRight, fi.R)
	kb.Set(system.KeyLeft, fi.L)
	kb.Set(system.KeySpace, fi.S)
	kb.Set(system.KeyThrow, fi.D)
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next writes the current frame into kb and advances.
// Past the last frame every key is released and false is returned.
func (r *Replayer) Next(kb system.Keyboard) bool {
	if r.frame >= len(r.data.Frames) {
		kb.Reset()
		return false
	}
	r.data.Frames[r.frame].Apply(kb)
	r.frame++
	return true
}

// Done returns true once every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
