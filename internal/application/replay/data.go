package replay

// FrameInput records the keyboard flags for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	R bool `json:"r,omitempty"` // RIGHT
	L bool `json:"l,omitempty"` // LEFT
	S bool `json:"s,omitempty"` // SPACE
	D bool `json:"d,omitempty"` // D (throw)
}

// ReplayData contains all data needed to replay a match
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	MatchID   string       `json:"matchId,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
