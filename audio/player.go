package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const beepRate = beep.SampleRate(SampleRate)

// bufferStreamer plays a mono sample buffer to both channels once
type bufferStreamer struct {
	buf []float64
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}

// Player owns the speaker and a mixer for fire-and-forget effects. Safe to
// use uninitialized: Play becomes a no-op, so the engine runs silent when
// no audio device is available.
type Player struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(beepRate, beepRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues a sample buffer onto the mixer
func (p *Player) Play(buf []float64) {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready || len(buf) == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(&bufferStreamer{buf: buf})
	speaker.Unlock()
}

// Close silences the mixer; the speaker itself stays open for process
// lifetime, matching beep's model
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}
