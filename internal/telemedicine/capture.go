package telemedicine

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCaptureUnavailable signals that no camera/microphone could be acquired,
// either because permission was denied or no device is present.
var ErrCaptureUnavailable = errors.New("telemedicine: media capture unavailable")

// Stream is an acquired audio/video capture. Release must be called exactly
// once when the call ends; extra calls are no-ops.
type Stream interface {
	Release()
}

// Capturer acquires the local media devices for a call.
type Capturer interface {
	Acquire(ctx context.Context) (Stream, error)
}

// SimulatedDevice is a Capturer backed by no real hardware. It hands out
// streams unconditionally and tracks how many are still held, standing in for
// a real capture backend during development and tests.
type SimulatedDevice struct {
	open atomic.Int32
}

// NewSimulatedDevice creates a simulated capture device.
func NewSimulatedDevice() *SimulatedDevice {
	return &SimulatedDevice{}
}

// Acquire hands out a simulated stream.
func (d *SimulatedDevice) Acquire(ctx context.Context) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.open.Add(1)
	return &simulatedStream{device: d}, nil
}

// Open reports how many streams are currently held.
func (d *SimulatedDevice) Open() int {
	return int(d.open.Load())
}

type simulatedStream struct {
	device   *SimulatedDevice
	released atomic.Bool
}

func (s *simulatedStream) Release() {
	if s.released.CompareAndSwap(false, true) {
		s.device.open.Add(-1)
	}
}
