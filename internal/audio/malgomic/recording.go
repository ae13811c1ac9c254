package malgomic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gen2brain/malgo"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
)

var (
	errNotPrepared = errors.New("recording not prepared")
	errNotStopped  = errors.New("recording still running")
)

// captureDevice is the part of *malgo.Device a recording drives.
type captureDevice interface {
	Start() error
	Stop() error
	Uninit()
}

// recording owns one malgo capture device from Prepare to StopAndUnload.
type recording struct {
	cfg  Config
	path string

	mu      sync.Mutex
	mctx    *malgo.AllocatedContext
	device  captureDevice
	pcm     []byte
	stopped bool
}

var _ audio.Recording = (*recording)(nil)

func (r *recording) Prepare(_ context.Context) error {
	if err := os.MkdirAll(r.cfg.Dir, 0o750); err != nil {
		return fmt.Errorf("failed to create recordings directory: %w", err)
	}

	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		log.Debug(log.CatRecord, "malgo", "message", message)
	})
	if err != nil {
		return fmt.Errorf("failed to initialize audio context: %w", err)
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatS16
	deviceConfig.Capture.Channels = uint32(r.cfg.Channels)
	deviceConfig.SampleRate = uint32(r.cfg.SampleRate)
	deviceConfig.Alsa.NoMMap = 1

	if r.cfg.Device != "" {
		infos, err := mctx.Devices(malgo.Capture)
		if err != nil {
			freeContext(mctx)
			return fmt.Errorf("failed to list capture devices: %w", err)
		}
		i, ok := selectDevice(infos, r.cfg.Device)
		if !ok {
			freeContext(mctx)
			return fmt.Errorf("capture device %q not found", r.cfg.Device)
		}
		deviceConfig.Capture.DeviceID = infos[i].ID.Pointer()
	}

	device, err := malgo.InitDevice(mctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: r.onFrames,
	})
	if err != nil {
		freeContext(mctx)
		return fmt.Errorf("failed to initialize capture device: %w", err)
	}

	r.mu.Lock()
	r.mctx = mctx
	r.device = device
	r.mu.Unlock()
	return nil
}

// onFrames runs on the miniaudio thread.
func (r *recording) onFrames(_, input []byte, _ uint32) {
	r.mu.Lock()
	r.pcm = append(r.pcm, input...)
	r.mu.Unlock()
}

func (r *recording) Start(_ context.Context) error {
	r.mu.Lock()
	device := r.device
	r.mu.Unlock()
	if device == nil {
		return errNotPrepared
	}
	if err := device.Start(); err != nil {
		return fmt.Errorf("failed to start capture device: %w", err)
	}
	log.Info(log.CatRecord, "Recording started", "path", r.path)
	return nil
}

// StopAndUnload stops capture, releases the device and writes the WAV file.
// Once the file is written the take is kept, so a device stop failure is only logged.
func (r *recording) StopAndUnload(_ context.Context) error {
	r.mu.Lock()
	device, mctx := r.device, r.mctx
	r.device, r.mctx = nil, nil
	r.mu.Unlock()
	if device == nil {
		return errNotPrepared
	}

	stopErr := device.Stop()
	device.Uninit()
	freeContext(mctx)

	r.mu.Lock()
	pcm := r.pcm
	r.pcm = nil
	r.mu.Unlock()

	if err := writeWAV(r.path, pcm, r.cfg.SampleRate, r.cfg.Channels); err != nil {
		return err
	}

	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()

	if stopErr != nil {
		log.Warn(log.CatRecord, "Capture device did not stop cleanly", "path", r.path, "error", stopErr.Error())
	}
	log.Info(log.CatRecord, "Recording saved", "path", r.path, "bytes", len(pcm))
	return nil
}

func (r *recording) URI() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.stopped {
		log.ErrorErr(log.CatRecord, "URI requested early", errNotStopped, "path", r.path)
		return ""
	}
	abs, err := filepath.Abs(r.path)
	if err != nil {
		abs = r.path
	}
	return audio.FileURI(abs)
}

func freeContext(mctx *malgo.AllocatedContext) {
	if mctx == nil {
		return
	}
	_ = mctx.Uninit()
	mctx.Free()
}
