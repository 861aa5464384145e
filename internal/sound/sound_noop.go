//go:build ci

package sound

import "github.com/palemoky/landlord-counter/internal/config"

type SoundManager struct{}

func NewSoundManager(config.SoundConfig) *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(name string) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
