package audio

import (
	"errors"
	"time"
)

// ErrHandleConsumed is returned by Start on a handle that has already been
// started. Handles are one-shot; every playback needs a fresh one.
var ErrHandleConsumed = errors.New("audio: playback handle already started")

// Engine is the injected audio capability. The panel never talks to a
// concrete audio host directly, so the control logic is testable against a
// fake implementation.
type Engine interface {
	// Decode turns raw fetched bytes into a playable buffer, or fails if
	// the bytes are not a supported format.
	Decode(data []byte) (Buffer, error)
	// NewPlayback allocates a fresh one-shot handle bound to buf.
	NewPlayback(buf Buffer) (Handle, error)
}

// Buffer is decoded, playable audio. Opaque to the panel beyond its shape.
type Buffer interface {
	SampleRate() int
	Channels() int
	Duration() time.Duration
}

// Handle is a single live playback. Start may be called at most once;
// Stop halts playback and is safe to call on a never-started or already
// stopped handle.
type Handle interface {
	Start() error
	Stop()
}
