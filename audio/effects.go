package audio

// Preset one-shot effects for common game events

// Blip is a short UI/pickup chirp
func Blip() []float64 {
	return Tone(Square, 880, 0.06, 0.005, 0.03)
}

// Hit is a low thud for damage feedback
func Hit() []float64 {
	return Sweep(Saw, 220, 110, 0.12, 0.005, 0.08)
}

// Explosion is a noise burst with a long tail
func Explosion() []float64 {
	body := Tone(Noise, 0, 0.45, 0.005, 0.4)
	rumble := Sweep(Sine, 120, 40, 0.45, 0.01, 0.35)
	return Mix(body, rumble, 0.6)
}

// Spawn is a rising chirp
func Spawn() []float64 {
	return Sweep(Square, 330, 660, 0.1, 0.01, 0.05)
}
