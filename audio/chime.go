package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	chimeFreq  = 880
	chimeLen   = 150 * time.Millisecond
)

// Chime plays a short sine tone and blocks until it finishes. Callers
// treat failure as non-fatal; the tool works without sound.
func Chime() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	defer speaker.Close()

	tone, err := generators.SineTone(sampleRate, chimeFreq)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(chimeLen), tone),
		beep.Callback(func() { close(done) }),
	))
	<-done
	return nil
}
