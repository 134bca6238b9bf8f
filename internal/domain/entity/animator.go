package entity

// Clip is a fixed-order list of sprite frames played at a fixed period
type Clip struct {
	Frames []string
	Period int  // ticks per frame
	Once   bool // stop on the last frame instead of wrapping
}

// Animator cycles the frames of the clip selected by State.
// It is advanced by the central animation pass, never by its own timer.
type Animator struct {
	Clips  map[AnimState]Clip
	State  AnimState
	Index  int
	Paused bool

	// Finished is set when a Once clip has shown its last frame
	Finished bool

	counter int
	fresh   bool // next Tick shows a frame without waiting a period
}

// NewAnimator creates an animator starting in the given state
func NewAnimator(clips map[AnimState]Clip, initial AnimState) *Animator {
	return &Animator{Clips: clips, State: initial, fresh: true}
}

// Play selects a clip. Selecting the current clip keeps its position.
func (a *Animator) Play(s AnimState) {
	if a.State == s {
		return
	}
	a.State = s
	a.Restart()
}

// Restart rewinds the current clip
func (a *Animator) Restart() {
	a.Index = 0
	a.counter = 0
	a.Finished = false
	a.fresh = true
}

// FirstFrame returns the first frame of a clip, or "" if the clip is missing
func (a *Animator) FirstFrame(s AnimState) string {
	clip, ok := a.Clips[s]
	if !ok || len(clip.Frames) == 0 {
		return ""
	}
	return clip.Frames[0]
}

// Tick advances the animator by one simulation tick.
// A newly selected clip shows its first frame on the next tick, later
// frames follow every Period ticks. Tick returns the frame to display and true,
// provided ready reports the frame as loaded. An unready frame is skipped
// for that period and the caller keeps showing its previous sprite.
func (a *Animator) Tick(ready func(string) bool) (string, bool) {
	if a.Paused || a.Finished {
		return "", false
	}
	clip, ok := a.Clips[a.State]
	if !ok || len(clip.Frames) == 0 || clip.Period <= 0 {
		return "", false
	}

	if a.fresh {
		a.fresh = false
	} else {
		a.counter++
		if a.counter < clip.Period {
			return "", false
		}
	}
	a.counter = 0

	frame := clip.Frames[a.Index%len(clip.Frames)]
	a.Index++
	if clip.Once {
		if a.Index >= len(clip.Frames) {
			a.Finished = true
		}
	} else {
		a.Index %= len(clip.Frames)
	}

	if ready != nil && !ready(frame) {
		return "", false
	}
	return frame, true
}
