package api

import (
	"github.com/vongst/web-audio-api/internal/audio"
)

// AudioEntry describes one control entry for API consumers: which source it
// controls and which of its two actions is currently enabled.
type AudioEntry struct {
	Index    int    `json:"index"`
	URL      string `json:"url"`
	State    string `json:"state"`
	CanPlay  bool   `json:"canPlay"`
	CanStop  bool   `json:"canStop"`
	Duration string `json:"duration"`
}

// AudioEntries lists the panel's control entries in source-list order.
func (a *API) AudioEntries() []AudioEntry {
	entries := a.panel.Entries()
	out := make([]AudioEntry, 0, len(entries))
	for i, e := range entries {
		out = append(out, AudioEntry{
			Index:    i,
			URL:      e.URL(),
			State:    e.State().String(),
			CanPlay:  e.CanPlay(),
			CanStop:  e.CanStop(),
			Duration: e.Duration().String(),
		})
	}
	return out
}

// Play starts playback on the i-th entry. audio.ErrActionDisabled when the
// entry is already playing, audio.ErrNoSuchEntry when i is out of range.
func (a *API) Play(i int) error {
	entry, ok := a.panel.Entry(i)
	if !ok {
		return audio.ErrNoSuchEntry
	}
	return entry.Play()
}

// Stop halts playback on the i-th entry.
func (a *API) Stop(i int) error {
	entry, ok := a.panel.Entry(i)
	if !ok {
		return audio.ErrNoSuchEntry
	}
	return entry.Stop()
}
