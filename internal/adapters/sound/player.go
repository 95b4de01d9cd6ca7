// Package sound provides the end-of-session chime.
package sound

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/xvierd/pomo/internal/ports"
)

//go:embed assets/chime.wav
var chimeWAV []byte

// Playback gain is volumeBase^volumeExponent, i.e. half amplitude.
const (
	volumeBase     = 2
	volumeExponent = -1
)

// Player plays the bundled chime through the speaker.
type Player struct {
	mu     sync.Mutex
	buffer *beep.Buffer
	closed bool
}

// NewPlayer decodes the chime into memory and opens the audio device.
// Call Close to release the device.
func NewPlayer() (*Player, error) {
	buffer, err := decodeChime(chimeWAV)
	if err != nil {
		return nil, err
	}

	format := buffer.Format()
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	return &Player{buffer: buffer}, nil
}

// PlayExpiryChime implements ports.Chime. It queues the chime on the
// speaker mixer and returns immediately.
func (p *Player) PlayExpiryChime() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	speaker.Play(halfVolume(p.buffer.Streamer(0, p.buffer.Len())))
}

// Close stops playback and releases the audio device.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

func decodeChime(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode chime: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chime: %w", err)
	}
	return buffer, nil
}

func halfVolume(s beep.Streamer) *effects.Volume {
	return &effects.Volume{
		Streamer: s,
		Base:     volumeBase,
		Volume:   volumeExponent,
	}
}

// New picks the chime for the current environment: the speaker when it can
// be opened, otherwise the system bell (if allowed), otherwise silence.
// The returned closer releases whatever was acquired.
func New(enabled, bell bool, logger *log.Logger) (ports.Chime, io.Closer) {
	if !enabled {
		return Mute{}, Mute{}
	}

	player, err := NewPlayer()
	if err == nil {
		return player, player
	}
	if logger != nil {
		logger.Warn("audio unavailable, falling back", "err", err, "bell", bell)
	}
	if bell {
		return NewBell(logger), Mute{}
	}
	return Mute{}, Mute{}
}

// Ensure Player implements ports.Chime.
var _ ports.Chime = (*Player)(nil)
