package probe

import (
	"fmt"
	"io"
	"time"

	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// MP3 probes MPEG-1/2 layer III streams.
type MP3 struct{}

// Probe implements Prober.
func (MP3) Probe(r io.ReadSeeker) (Info, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}

	// go-mp3 always decodes to 16-bit stereo.
	const channels, bytesPerSample = 2, 2
	info := Info{Format: "mp3", SampleRate: dec.SampleRate(), Channels: channels}
	if n := dec.Length(); n > 0 && info.SampleRate > 0 {
		frames := n / (channels * bytesPerSample)
		info.Duration = time.Duration(frames) * time.Second / time.Duration(info.SampleRate)
	}
	return info, nil
}

// Vorbis probes Ogg Vorbis streams.
type Vorbis struct{}

// Probe implements Prober.
func (Vorbis) Probe(r io.ReadSeeker) (Info, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w", err)
	}

	info := Info{Format: "ogg", SampleRate: dec.SampleRate(), Channels: dec.Channels()}
	if n := dec.Length(); n > 0 && info.SampleRate > 0 {
		info.Duration = time.Duration(n) * time.Second / time.Duration(info.SampleRate)
	}
	return info, nil
}

// WAV probes RIFF/WAVE files holding integer PCM.
type WAV struct{}

// Probe implements Prober.
func (WAV) Probe(r io.ReadSeeker) (Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Info{}, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 || (dec.BitDepth != 8 && dec.BitDepth != 16) {
		return Info{}, fmt.Errorf("%w: format=%d bits=%d", ErrUnsupportedWavEncoding, dec.WavAudioFormat, dec.BitDepth)
	}

	info := Info{Format: "wav", SampleRate: int(dec.SampleRate), Channels: int(dec.NumChans)}
	if d, err := dec.Duration(); err == nil {
		info.Duration = d
	}
	return info, nil
}
