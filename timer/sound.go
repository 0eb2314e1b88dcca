package timer

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/countdown/internal/config"
)

const speakerSampleRate = beep.SampleRate(44100)

var speakerOnce sync.Once

// initSpeaker prepares the speaker once per process. Streams at other rates
// are resampled to speakerSampleRate.
func initSpeaker() error {
	var err error

	speakerOnce.Do(func() {
		bufferSize := 10

		err = speaker.Init(
			speakerSampleRate,
			speakerSampleRate.N(time.Second/time.Duration(bufferSize)),
		)
	})

	return err
}

// note is a tone and the time it sounds for.
type note struct {
	freq float64
	dur  time.Duration
}

var builtinTones = map[string][]note{
	"bell": {
		{880, 400 * time.Millisecond},
		{0, 150 * time.Millisecond},
		{880, 400 * time.Millisecond},
	},
	"chime": {
		{659.25, 200 * time.Millisecond},
		{783.99, 200 * time.Millisecond},
		{1046.5, 450 * time.Millisecond},
	},
	"beep": {
		{1000, 120 * time.Millisecond},
		{0, 80 * time.Millisecond},
		{1000, 120 * time.Millisecond},
		{0, 80 * time.Millisecond},
		{1000, 120 * time.Millisecond},
	},
}

// toneStream synthesises one of the built-in alert sounds.
func toneStream(name string) (beep.Streamer, error) {
	notes, ok := builtinTones[name]
	if !ok {
		return nil, errUnknownTone.Fmt(name)
	}

	streams := make([]beep.Streamer, 0, len(notes))

	for _, n := range notes {
		samples := speakerSampleRate.N(n.dur)

		if n.freq == 0 {
			streams = append(streams, beep.Silence(samples))
			continue
		}

		tone, err := generators.SineTone(speakerSampleRate, n.freq)
		if err != nil {
			return nil, err
		}

		streams = append(streams, beep.Take(samples, tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(streams...),
		Base:     2,
		Volume:   -2,
	}, nil
}

// fileStream decodes an audio file and resamples it for the speaker. The
// returned closer releases the file.
func fileStream(path string) (beep.Streamer, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	closer := func() {
		_ = stream.Close()
		_ = f.Close()
	}

	if format.SampleRate == speakerSampleRate {
		return stream, closer, nil
	}

	return beep.Resample(4, format.SampleRate, speakerSampleRate, stream), closer, nil
}

// soundStream returns the stream for a configured sound name or path.
func soundStream(sound string) (beep.Streamer, func(), error) {
	if _, ok := builtinTones[sound]; ok {
		s, err := toneStream(sound)
		return s, func() {}, err
	}

	path, err := config.ResolveSound(sound)
	if err != nil {
		return nil, nil, err
	}

	return fileStream(path)
}

// playSound plays sound to the end and blocks until it finishes.
func playSound(sound string) error {
	stream, closeStream, err := soundStream(sound)
	if err != nil {
		return err
	}

	defer closeStream()

	err = initSpeaker()
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
