package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator generates a sine tone with a short attack and an
// exponential decay.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

// NewToneGenerator creates a tone generator.
func NewToneGenerator(sr beep.SampleRate, freq, decay float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.005, 1.0)
		env := attack * math.Exp(-t*g.decay)
		sample := 0.4 * env * (math.Sin(2*math.Pi*g.freq*t) + 0.25*math.Sin(4*math.Pi*g.freq*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ThudGenerator generates a dull knock: a falling low sine with a noise burst.
type ThudGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewThudGenerator creates a thud generator. The noise is seeded for
// repeatable output.
func NewThudGenerator(sr beep.SampleRate) *ThudGenerator {
	return &ThudGenerator{sr: sr, seed: 1}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-t * 30)
		freq := 90 - 40*math.Min(t/0.08, 1.0)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := env * (0.5*math.Sin(2*math.Pi*freq*t) + 0.15*noise*math.Exp(-t*80))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes describes the chimes. A rising fifth for a correct box, a
// falling tritone for a box on the wrong spot.
var cueNotes = map[Cue][]note{
	CueCorrect:   {{523.25, 90 * time.Millisecond}, {783.99, 180 * time.Millisecond}},
	CueIncorrect: {{392.00, 90 * time.Millisecond}, {277.18, 220 * time.Millisecond}},
}

// CueStreamer builds the finite streamer for a cue, or nil for CueNone.
func CueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	if c == CueWall {
		return beep.Take(sr.N(120*time.Millisecond), NewThudGenerator(sr))
	}

	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, beep.Take(sr.N(n.dur), NewToneGenerator(sr, n.freq, 12)))
	}
	return beep.Seq(parts...)
}
