package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq      float64
	freqEnd   float64 // sweep target; equal to freq for a flat tone
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates an oscillator sweeping from freq to freqEnd over
// the duration. Pass freqEnd == freq for a constant pitch.
func NewOscillator(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		f := o.freq + (o.freqEnd-o.freq)*t
		o.phase += f / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer in an attack/sustain/release volume shape.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer's loudness. math.Log2(0) is -Inf, so zero
// volume becomes silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SoundType identifies a synthesized effect.
type SoundType int

const (
	SoundFire SoundType = iota
	SoundExplosion
	SoundPickup
	SoundPlayerHit
	SoundGameOver
)

// CreateFireSound is a short descending pew.
func CreateFireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(880, 320, 90*time.Millisecond, WaveSquare, rate)
	shaped := NewEnvelope(osc, 90*time.Millisecond, 2*time.Millisecond, 50*time.Millisecond, rate)
	return newVolume(shaped, 0.25)
}

// CreateExplosionSound is a noise burst with a slow decay.
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, 0, 280*time.Millisecond, WaveNoise, rate)
	rumble := NewOscillator(110, 40, 280*time.Millisecond, WaveSine, rate)
	mixed := beep.Mix(
		NewEnvelope(noise, 280*time.Millisecond, time.Millisecond, 240*time.Millisecond, rate),
		NewEnvelope(rumble, 280*time.Millisecond, time.Millisecond, 240*time.Millisecond, rate),
	)
	return newVolume(mixed, 0.5)
}

// CreatePickupSound is a rising two-note chime.
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(660, 660, 70*time.Millisecond, WaveSine, rate),
		70*time.Millisecond, 4*time.Millisecond, 30*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(990, 990, 110*time.Millisecond, WaveSine, rate),
		110*time.Millisecond, 4*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.35)
}

// CreatePlayerHitSound is a harsh low buzz.
func CreatePlayerHitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(140, 60, 220*time.Millisecond, WaveSaw, rate)
	shaped := NewEnvelope(osc, 220*time.Millisecond, time.Millisecond, 120*time.Millisecond, rate)
	return newVolume(shaped, 0.45)
}

// CreateGameOverSound is a long falling sweep.
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(440, 55, 900*time.Millisecond, WaveSquare, rate)
	shaped := NewEnvelope(osc, 900*time.Millisecond, 10*time.Millisecond, 400*time.Millisecond, rate)
	return newVolume(shaped, 0.4)
}

// GetSoundEffect returns a fresh streamer for the given sound type.
func GetSoundEffect(st SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case SoundFire:
		return CreateFireSound(rate)
	case SoundExplosion:
		return CreateExplosionSound(rate)
	case SoundPickup:
		return CreatePickupSound(rate)
	case SoundPlayerHit:
		return CreatePlayerHitSound(rate)
	case SoundGameOver:
		return CreateGameOverSound(rate)
	default:
		return nil
	}
}
