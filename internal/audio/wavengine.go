package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WAVEngine is a concrete Engine for canonical 16-bit PCM WAV data. Decoded
// buffers hold float32 samples; playback handles stream sample frames to the
// engine's sink on a goroutine, paced by the buffer's sample rate.
type WAVEngine struct {
	sink Sink
	log  *zap.Logger
}

// Sink consumes playback sample frames. Samples are interleaved float32 in
// [-1, 1].
type Sink interface {
	Write(samples []float32) error
}

// DiscardSink drops all samples. Default for headless runs.
type DiscardSink struct{}

func (DiscardSink) Write([]float32) error { return nil }

func NewWAVEngine(sink Sink, log *zap.Logger) *WAVEngine {
	if sink == nil {
		sink = DiscardSink{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &WAVEngine{sink: sink, log: log}
}

// wavHeader is the canonical RIFF layout: a fmt chunk followed directly by
// the data chunk. Tag fields are big-endian byte strings, the rest is
// little-endian.
type wavHeader struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// Decode parses data as canonical 16-bit PCM WAV and converts the payload to
// float32 samples.
func (e *WAVEngine) Decode(data []byte) (Buffer, error) {
	r := bytes.NewReader(data)
	var h wavHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("read wav header: %w", err)
	}
	if string(h.ChunkID[:]) != "RIFF" || string(h.Format[:]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE stream")
	}
	if string(h.Subchunk1ID[:]) != "fmt " || string(h.Subchunk2ID[:]) != "data" {
		return nil, errors.New("non-canonical wav chunk layout")
	}
	if h.AudioFormat != 1 || h.BitsPerSample != 16 {
		return nil, fmt.Errorf("unsupported wav encoding: format=%d bits=%d", h.AudioFormat, h.BitsPerSample)
	}
	if h.NumChannels == 0 || h.SampleRate == 0 {
		return nil, errors.New("wav header declares zero channels or sample rate")
	}
	if int64(h.Subchunk2Size) > int64(r.Len()) {
		return nil, fmt.Errorf("wav declares %d payload bytes but only %d remain", h.Subchunk2Size, r.Len())
	}
	payload := make([]byte, h.Subchunk2Size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read wav payload: %w", err)
	}
	if len(payload)%2 != 0 {
		return nil, errors.New("wav payload truncated mid-sample")
	}
	samples := make([]float32, len(payload)/2)
	for i := range samples {
		v := int16(uint16(payload[i*2]) | uint16(payload[i*2+1])<<8)
		samples[i] = float32(v) / 32768
	}
	return &PCMBuffer{
		sampleRate: int(h.SampleRate),
		channels:   int(h.NumChannels),
		samples:    samples,
	}, nil
}

// NewPlayback allocates a fresh one-shot handle bound to buf.
func (e *WAVEngine) NewPlayback(buf Buffer) (Handle, error) {
	pcm, ok := buf.(*PCMBuffer)
	if !ok {
		return nil, fmt.Errorf("buffer %T was not decoded by this engine", buf)
	}
	return &pcmPlayback{
		id:   uuid.NewString(),
		buf:  pcm,
		sink: e.sink,
		log:  e.log,
		stop: make(chan struct{}),
	}, nil
}

// PCMBuffer is decoded audio as interleaved float32 samples.
type PCMBuffer struct {
	sampleRate int
	channels   int
	samples    []float32
}

func (b *PCMBuffer) SampleRate() int { return b.sampleRate }
func (b *PCMBuffer) Channels() int   { return b.channels }

func (b *PCMBuffer) Duration() time.Duration {
	frames := len(b.samples) / b.channels
	return time.Duration(frames) * time.Second / time.Duration(b.sampleRate)
}

// Samples exposes the raw decoded samples.
func (b *PCMBuffer) Samples() []float32 { return b.samples }

// pcmPlayback streams one buffer to the sink. One-shot: Start errors on the
// second call, Stop is idempotent.
type pcmPlayback struct {
	id      string
	buf     *PCMBuffer
	sink    Sink
	log     *zap.Logger
	started atomic.Bool
	stop    chan struct{}
	once    sync.Once
}

func (p *pcmPlayback) Start() error {
	if !p.started.CompareAndSwap(false, true) {
		return ErrHandleConsumed
	}
	p.log.Debug("playback handle started", zap.String("handle", p.id))
	go p.stream()
	return nil
}

func (p *pcmPlayback) Stop() {
	p.once.Do(func() { close(p.stop) })
}

// stream pushes roughly 100ms of interleaved samples per tick until the
// buffer runs out or Stop fires.
func (p *pcmPlayback) stream() {
	chunk := p.buf.sampleRate * p.buf.channels / 10
	if chunk == 0 {
		chunk = len(p.buf.samples)
	}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	samples := p.buf.samples
	for len(samples) > 0 {
		n := chunk
		if n > len(samples) {
			n = len(samples)
		}
		if err := p.sink.Write(samples[:n]); err != nil {
			p.log.Warn("sink rejected samples", zap.String("handle", p.id), zap.Error(err))
			return
		}
		samples = samples[n:]
		if len(samples) == 0 {
			break
		}
		select {
		case <-p.stop:
			return
		case <-ticker.C:
		}
	}
	p.log.Debug("playback handle drained", zap.String("handle", p.id))
}
