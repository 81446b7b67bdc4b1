package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams everything out of s, returning the sample count and the
// peak absolute amplitude.
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				if a := math.Abs(buf[i][c]); a > peak {
					peak = a
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, 440, dur, WaveSine, testRate)
	n, peak := drain(osc)
	if want := testRate.N(dur); n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
	if peak > 1.0 {
		t.Errorf("peak amplitude %v exceeds full scale", peak)
	}
	if peak < 0.5 {
		t.Errorf("peak amplitude %v, sine should approach full scale", peak)
	}
}

func TestOscillatorExhaustedStreamerStaysDone(t *testing.T) {
	osc := NewOscillator(440, 440, 10*time.Millisecond, WaveSquare, testRate)
	drain(osc)
	buf := make([][2]float64, 16)
	n, ok := osc.Stream(buf)
	if n != 0 || ok {
		t.Errorf("exhausted oscillator returned (%d, %v), want (0, false)", n, ok)
	}
}

func TestEnvelopeAttackStartsQuiet(t *testing.T) {
	dur := 200 * time.Millisecond
	osc := NewOscillator(440, 440, dur, WaveSquare, testRate)
	env := NewEnvelope(osc, dur, 50*time.Millisecond, 50*time.Millisecond, testRate)

	buf := make([][2]float64, 64)
	n, _ := env.Stream(buf)
	if n == 0 {
		t.Fatal("envelope produced no samples")
	}
	// 64 samples into a 50ms attack the gain is still a few percent.
	for i := 0; i < n; i++ {
		if math.Abs(buf[i][0]) > 0.1 {
			t.Fatalf("sample %d = %v during attack, want near-silent start", i, buf[i][0])
		}
	}
}

func TestEnvelopeClampsDuration(t *testing.T) {
	// Oscillator longer than the envelope: the envelope ends the stream.
	osc := NewOscillator(440, 440, time.Second, WaveSine, testRate)
	dur := 100 * time.Millisecond
	env := NewEnvelope(osc, dur, 5*time.Millisecond, 20*time.Millisecond, testRate)
	n, _ := drain(env)
	if want := testRate.N(dur); n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	osc := NewOscillator(440, 440, 50*time.Millisecond, WaveSquare, testRate)
	_, peak := drain(newVolume(osc, 0))
	if peak != 0 {
		t.Errorf("peak = %v at zero volume, want 0", peak)
	}
}

func TestEverySoundTypeSynthesizes(t *testing.T) {
	for _, st := range []SoundType{SoundFire, SoundExplosion, SoundPickup, SoundPlayerHit, SoundGameOver} {
		s := GetSoundEffect(st, testRate)
		if s == nil {
			t.Fatalf("GetSoundEffect(%d) = nil", st)
		}
		n, peak := drain(s)
		if n == 0 {
			t.Errorf("sound %d produced no samples", st)
		}
		if peak == 0 {
			t.Errorf("sound %d is silent", st)
		}
		if peak > 1.0 {
			t.Errorf("sound %d peak %v exceeds full scale", st, peak)
		}
	}
}

func TestPanFor(t *testing.T) {
	cases := []struct {
		x, w, want float64
	}{
		{0, 600, -1},
		{300, 600, 0},
		{600, 600, 1},
		{100, 0, 0}, // degenerate world width
	}
	for _, tc := range cases {
		if got := PanFor(tc.x, tc.w); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("PanFor(%v, %v) = %v, want %v", tc.x, tc.w, got, tc.want)
		}
	}
}
