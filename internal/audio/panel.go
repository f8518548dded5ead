package audio

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrActionDisabled is returned when Play is invoked on a playing entry or
// Stop on a stopped one. In the original page the disabled button made such
// calls impossible; here the caller gets a rejected no-op with state provably
// unchanged.
var ErrActionDisabled = errors.New("audio: control action is disabled in current state")

// ErrNoSuchEntry is returned for an index outside the panel.
var ErrNoSuchEntry = errors.New("audio: no control entry at index")

// EntryState is the whole state machine of a control entry: play and stop
// are mutually exclusive, and which one is enabled follows from the state.
type EntryState int

const (
	// StateStopped: play enabled, stop disabled. Initial state.
	StateStopped EntryState = iota
	// StatePlaying: play disabled, stop enabled.
	StatePlaying
)

func (s EntryState) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "stopped"
}

// Entry pairs one decoded audio source with its play/stop controls. A live
// handle exists only in StatePlaying and is discarded, never reused, on the
// transition back to StateStopped.
type Entry struct {
	engine Engine
	log    *zap.Logger

	mu     sync.Mutex
	url    string
	buffer Buffer
	handle Handle
	state  EntryState
}

// URL reports which source this entry controls.
func (e *Entry) URL() string { return e.url }

// State returns the entry's current state.
func (e *Entry) State() EntryState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// CanPlay reports whether the play action is enabled.
func (e *Entry) CanPlay() bool { return e.State() == StateStopped }

// CanStop reports whether the stop action is enabled.
func (e *Entry) CanStop() bool { return e.State() == StatePlaying }

// Duration reports the decoded buffer's length.
func (e *Entry) Duration() time.Duration {
	return e.buffer.Duration()
}

// Play allocates a fresh playback handle for the entry's buffer, starts it,
// and transitions to StatePlaying. A handle is never reused across plays:
// starting a consumed handle is a terminal capability violation in the audio
// host, so each Play constructs a new one. Rejected with ErrActionDisabled
// while already playing.
func (e *Entry) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateStopped {
		return ErrActionDisabled
	}
	handle, err := e.engine.NewPlayback(e.buffer)
	if err != nil {
		e.log.Error("playback allocation failed", zap.String("url", e.url), zap.Error(err))
		return err
	}
	if err := handle.Start(); err != nil {
		e.log.Error("playback start failed", zap.String("url", e.url), zap.Error(err))
		return err
	}
	e.handle = handle
	e.state = StatePlaying
	e.log.Info("playback started", zap.String("url", e.url))
	return nil
}

// Stop halts the live handle, discards it, and transitions to StateStopped.
// Rejected with ErrActionDisabled while already stopped.
func (e *Entry) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StatePlaying {
		return ErrActionDisabled
	}
	if e.handle != nil {
		e.handle.Stop()
	}
	e.handle = nil
	e.state = StateStopped
	e.log.Info("playback stopped", zap.String("url", e.url))
	return nil
}

// Panel holds one control entry per successfully loaded audio source.
type Panel struct {
	entries []*Entry
}

// LoaderPort is what the panel needs from the loading side.
type LoaderPort interface {
	Load(ctx context.Context, url string) (Buffer, error)
}

// NewPanel loads the given sources strictly in order, one fully completing
// before the next begins, and builds a control entry per decoded buffer.
// Sources that fail to fetch or decode are logged and silently omitted from
// the panel: no placeholder, no retry.
func NewPanel(ctx context.Context, loader LoaderPort, engine Engine, urls []string, log *zap.Logger) *Panel {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Panel{}
	for _, url := range urls {
		buf, err := loader.Load(ctx, url)
		if err != nil {
			log.Warn("audio source skipped", zap.String("url", url), zap.Error(err))
			continue
		}
		p.entries = append(p.entries, &Entry{
			engine: engine,
			log:    log,
			url:    url,
			buffer: buf,
			state:  StateStopped,
		})
	}
	return p
}

// Entries returns the panel's control entries in source-list order.
func (p *Panel) Entries() []*Entry { return p.entries }

// Entry returns the i-th control entry, or false when out of range.
func (p *Panel) Entry(i int) (*Entry, bool) {
	if i < 0 || i >= len(p.entries) {
		return nil, false
	}
	return p.entries[i], true
}
