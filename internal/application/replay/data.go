package replay

// Version is the replay file format version.
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	J bool `json:"j,omitempty"` // Jump pressed
	S bool `json:"s,omitempty"` // Fire pressed
}

// ReplayData contains all data needed to replay a level
type ReplayData struct {
	Version       string       `json:"version"`
	Level         int          `json:"level"`
	StartingScore int          `json:"startingScore"`
	StartTime     string       `json:"startTime"`
	Frames        []FrameInput `json:"frames"`
}
