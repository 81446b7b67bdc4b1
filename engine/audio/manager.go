package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and a shared mixer. All effects are
// synthesized; there are no audio assets to load.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure leaves the manager muted rather
// than failing the game; sound is not worth halting over.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		m.muted = true
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// Play fires a one-shot effect panned by pan in [-1, 1].
func (m *Manager) Play(st SoundType, pan float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.muted {
		return
	}
	s := GetSoundEffect(st, sampleRate)
	if s == nil {
		return
	}
	if pan < -1 {
		pan = -1
	} else if pan > 1 {
		pan = 1
	}
	speaker.Lock()
	m.mixer.Add(&effects.Pan{Streamer: s, Pan: pan})
	speaker.Unlock()
}

// PanFor converts a world X coordinate to a stereo pan position.
func PanFor(x, worldW float64) float64 {
	if worldW <= 0 {
		return 0
	}
	return x/worldW*2 - 1
}
