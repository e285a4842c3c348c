package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Blast generates an exponentially decaying mix of low-passed noise and a
// falling rumble. It streams forever; wrap it in beep.Take.
type Blast struct {
	sr    beep.SampleRate
	pos   int
	seed  int64
	lp    float64
	phase float64
}

// NewBlast creates a blast generator. The same seed yields the same samples.
func NewBlast(sr beep.SampleRate, seed int64) *Blast {
	return &Blast{sr: sr, seed: seed & 0x7fffffff}
}

func (b *Blast) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		env := math.Exp(-t * 12)

		b.seed = (b.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(b.seed)/float64(0x7fffffff)*2 - 1
		b.lp += 0.25 * (noise - b.lp)

		freq := 40 + 80*math.Exp(-t*20)
		b.phase += freq / float64(b.sr)
		b.phase -= math.Floor(b.phase)
		rumble := math.Sin(2 * math.Pi * b.phase)

		v := env * (0.6*b.lp + 0.4*rumble)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *Blast) Err() error { return nil }
