// Package audio synthesizes short feedback blips for collection and
// purchase events. No sample assets; everything is generated.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays synthesized blips. A disabled player (muted, or speaker
// init failed) swallows every call.
type Player struct {
	enabled bool
}

// New initializes the speaker. Any failure returns a disabled player and
// the error; the widget runs fine without sound.
func New(mute bool) (*Player, error) {
	if mute {
		return &Player{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Collect plays the collection blip. Player collections ring higher than
// collector harvests.
func (p *Player) Collect(byPlayer bool) {
	freq := 660.0
	if byPlayer {
		freq = 880.0
	}
	p.play(freq, 90*time.Millisecond)
}

// Purchase plays the purchase confirmation blip.
func (p *Player) Purchase() {
	p.play(440.0, 140*time.Millisecond)
}

func (p *Player) play(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	speaker.Play(newBlip(sampleRate, freq, sampleRate.N(d)))
}

// blip is a sine tone with a linear decay envelope.
type blip struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newBlip(sr beep.SampleRate, freq float64, total int) *blip {
	return &blip{sr: sr, freq: freq, total: total}
}

// Stream fills samples with the enveloped sine wave. Implements
// beep.Streamer.
func (b *blip) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= b.total {
			break
		}
		env := 1 - float64(b.pos)/float64(b.total)
		v := math.Sin(2*math.Pi*b.freq*float64(b.pos)/float64(b.sr)) * env * 0.25
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (b *blip) Err() error { return nil }
