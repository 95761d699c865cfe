package input

import "github.com/gdamore/tcell/v2"

// State is the externally-owned input snapshot gameplay code reads from.
// The host loop feeds it tcell events and calls BeginFrame once per frame;
// "pressed" covers keys seen this frame, "just pressed" keys seen this
// frame but not the previous one. The ECS core has no dependency on it.
type State struct {
	keys      map[tcell.Key]bool
	runes     map[rune]bool
	prevKeys  map[tcell.Key]bool
	prevRunes map[rune]bool
}

func NewState() *State {
	return &State{
		keys:      make(map[tcell.Key]bool),
		runes:     make(map[rune]bool),
		prevKeys:  make(map[tcell.Key]bool),
		prevRunes: make(map[rune]bool),
	}
}

// BeginFrame rotates the current key set into the previous one
func (s *State) BeginFrame() {
	s.prevKeys, s.keys = s.keys, s.prevKeys
	s.prevRunes, s.runes = s.runes, s.prevRunes
	clear(s.keys)
	clear(s.runes)
}

// Feed records a tcell event; non-key events are ignored
func (s *State) Feed(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	if key.Key() == tcell.KeyRune {
		s.runes[key.Rune()] = true
		return
	}
	s.keys[key.Key()] = true
}

// KeyPressed reports whether a special key was seen this frame
func (s *State) KeyPressed(k tcell.Key) bool {
	return s.keys[k]
}

// RunePressed reports whether a character key was seen this frame
func (s *State) RunePressed(r rune) bool {
	return s.runes[r]
}

// KeyJustPressed reports a special key seen this frame but not the last
func (s *State) KeyJustPressed(k tcell.Key) bool {
	return s.keys[k] && !s.prevKeys[k]
}

// RuneJustPressed reports a character key seen this frame but not the last
func (s *State) RuneJustPressed(r rune) bool {
	return s.runes[r] && !s.prevRunes[r]
}

// Axis maps WASD/arrow keys to a movement direction in {-1, 0, 1}
func (s *State) Axis() (dx, dy float64) {
	if s.RunePressed('a') || s.KeyPressed(tcell.KeyLeft) {
		dx -= 1
	}
	if s.RunePressed('d') || s.KeyPressed(tcell.KeyRight) {
		dx += 1
	}
	if s.RunePressed('w') || s.KeyPressed(tcell.KeyUp) {
		dy -= 1
	}
	if s.RunePressed('s') || s.KeyPressed(tcell.KeyDown) {
		dy += 1
	}
	return dx, dy
}
