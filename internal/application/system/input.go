package system

// InputState is the control snapshot for one frame.
// Movement keys report whether they are held; Jump and Fire report a press
// that began this frame.
type InputState struct {
	Left, Right bool
	Up, Down    bool
	Jump        bool
	Fire        bool
}

// Idle reports whether no control is active.
func (in InputState) Idle() bool {
	return in == InputState{}
}
