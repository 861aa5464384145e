//go:build !ci

package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/palemoky/landlord-counter/internal/config"
	"github.com/palemoky/landlord-counter/internal/logger"
)

const sampleRate = beep.SampleRate(44100)

// cueExts 同名提示音按此顺序查找
var cueExts = []string{".wav", ".mp3"}

var errCueMissing = errors.New("no accept/reject file found")

type SoundManager struct {
	cfg     config.SoundConfig
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager(cfg config.SoundConfig) *SoundManager {
	return &SoundManager{
		cfg:     cfg,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and buffers the two cues; a disabled config does nothing
func (sm *SoundManager) Init() error {
	if !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true

	sm.loadCues()
	return nil
}

// loadCues buffers CueAccepted and CueRejected. Other files in the directory are ignored.
func (sm *SoundManager) loadCues() {
	for _, cue := range []string{CueAccepted, CueRejected} {
		buffer, err := sm.loadCue(cue)
		if err != nil {
			logger.Warn("sound cue %q unavailable in %s: %v", cue, sm.cfg.Dir, err)
			continue
		}
		sm.buffers[cue] = buffer
	}
}

func (sm *SoundManager) loadCue(cue string) (*beep.Buffer, error) {
	for _, ext := range cueExts {
		path := filepath.Join(sm.cfg.Dir, cue+ext)
		f, err := os.Open(filepath.Clean(path))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return decodeCue(f, ext)
	}
	return nil, errCueMissing
}

// decodeCue decodes one file and resamples it to the speaker rate
func decodeCue(f *os.File, ext string) (*beep.Buffer, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	if ext == ".mp3" {
		streamer, format, err = mp3.Decode(f)
	} else {
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Name(), err)
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(s)
	return buffer, nil
}

// Play plays a buffered cue; unknown or missing cues are silent
func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}
	if buffer, ok := sm.buffers[name]; ok {
		speaker.Play(buffer.Streamer(0, buffer.Len()))
	}
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
