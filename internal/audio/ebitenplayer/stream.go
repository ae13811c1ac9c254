package ebitenplayer

import (
	"errors"
	"io"
	"sync"
)

// bytesPerFrame is one 16-bit stereo frame.
const bytesPerFrame = 4

// loopStream is an io.ReadSeeker over decoded PCM whose loop flag can change
// while the audio goroutine is reading it.
type loopStream struct {
	mu      sync.Mutex
	pcm     []byte
	pos     int64
	looping bool
}

func newLoopStream(pcm []byte) *loopStream {
	// Drop a trailing partial frame so wraparound stays frame aligned.
	n := len(pcm) - len(pcm)%bytesPerFrame
	return &loopStream{pcm: pcm[:n]}
}

func (s *loopStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pcm) == 0 {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) {
		if s.pos >= int64(len(s.pcm)) {
			if !s.looping {
				break
			}
			s.pos = 0
		}
		c := copy(p[n:], s.pcm[s.pos:])
		n += c
		s.pos += int64(c)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (s *loopStream) Seek(offset int64, whence int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.pos + offset
	case io.SeekEnd:
		next = int64(len(s.pcm)) + offset
	default:
		return 0, errors.New("loopStream.Seek: invalid whence")
	}
	if next < 0 {
		return 0, errors.New("loopStream.Seek: negative position")
	}
	s.pos = min(next, int64(len(s.pcm)))
	return s.pos, nil
}

// Length is the PCM size in bytes of one pass.
func (s *loopStream) Length() int64 {
	return int64(len(s.pcm))
}

func (s *loopStream) SetLooping(looping bool) {
	s.mu.Lock()
	s.looping = looping
	s.mu.Unlock()
}

func (s *loopStream) Looping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.looping
}

// Finished reports whether a non-looping pass reached the end.
func (s *loopStream) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.looping && s.pos >= int64(len(s.pcm))
}
