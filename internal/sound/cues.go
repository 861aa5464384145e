// Package sound plays short audio cues when a hand is accepted or rejected.
package sound

// Cue names match file base names under the sound directory, e.g. accept.wav.
const (
	CueAccepted = "accept"
	CueRejected = "reject"
)
