package audio

import (
	"math"
	"math/rand"
)

// SampleRate for all synthesis and playback
const SampleRate = 44100

// Wave selects the oscillator shape
type Wave uint8

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// Tone synthesizes an enveloped oscillator burst as mono samples at unity
// gain. attack and release are ramp lengths in seconds, carved out of the
// total duration.
func Tone(w Wave, freq, duration, attack, release float64) []float64 {
	buf := oscillate(w, freq, int(duration*SampleRate))
	envelope(buf, attack, release)
	return buf
}

// Sweep synthesizes a tone whose frequency glides linearly from start to
// end over the duration
func Sweep(w Wave, startFreq, endFreq, duration, attack, release float64) []float64 {
	samples := int(duration * SampleRate)
	buf := make([]float64, samples)
	phase := 0.0
	for i := range buf {
		t := float64(i) / float64(samples)
		freq := startFreq + (endFreq-startFreq)*t
		buf[i] = sample(w, phase)
		phase += freq / SampleRate
		if phase >= 1 {
			phase -= 1
		}
	}
	envelope(buf, attack, release)
	return buf
}

// Mix adds b into a at the given gain, growing a if b is longer
func Mix(a, b []float64, gain float64) []float64 {
	if len(b) > len(a) {
		grown := make([]float64, len(b))
		copy(grown, a)
		a = grown
	}
	for i := range b {
		a[i] += b[i] * gain
	}
	return a
}

func oscillate(w Wave, freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	inc := freq / SampleRate
	for i := range buf {
		buf[i] = sample(w, phase)
		phase += inc
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

func sample(w Wave, phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Saw:
		return 2 * (phase - 0.5)
	case Noise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies linear attack and release ramps in place
func envelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * SampleRate)
	release := int(releaseSec * SampleRate)
	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}
	for i := range buf {
		switch {
		case i < attack && attack > 0:
			buf[i] *= float64(i) / float64(attack)
		case i >= releaseStart && release > 0:
			buf[i] *= float64(total-i) / float64(release)
		}
	}
}
