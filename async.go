package mdeck

import (
	"context"
	"image"
	"time"
)

// AsyncSession wraps a Session with a context.Context-aware API. The
// underlying HID calls are still synchronous and can't be aborted
// mid-flight, but a cancelled context unblocks the caller immediately
// instead of waiting for the in-flight transfer to finish: each call
// is dispatched onto its own goroutine, with a one-slot semaphore
// channel serializing access to the Session the same way Session's own
// mutex does, except acquiring it is itself cancellable.
type AsyncSession struct {
	session *Session
	sem     chan struct{}
}

// NewAsyncSession wraps session for context-aware use.
func NewAsyncSession(session *Session) *AsyncSession {
	return &AsyncSession{session: session, sem: make(chan struct{}, 1)}
}

// Session returns the synchronous Session this wraps.
func (a *AsyncSession) Session() *Session { return a.session }

// run serializes fn behind the semaphore and runs it on its own
// goroutine, so ctx cancellation unblocks the caller even though fn
// itself keeps running to completion in the background.
func run[T any](ctx context.Context, a *AsyncSession, fn func() (T, error)) (T, error) {
	var zero T

	select {
	case a.sem <- struct{}{}:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	result := make(chan struct {
		v   T
		err error
	}, 1)
	go func() {
		defer func() { <-a.sem }()
		v, err := fn()
		result <- struct {
			v   T
			err error
		}{v, err}
	}()

	select {
	case r := <-result:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func runVoid(ctx context.Context, a *AsyncSession, fn func() error) error {
	_, err := run(ctx, a, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// Sleep puts the device to sleep.
func (a *AsyncSession) Sleep(ctx context.Context) error {
	return runVoid(ctx, a, a.session.Sleep)
}

// KeepAlive sends a periodic keep-alive.
func (a *AsyncSession) KeepAlive(ctx context.Context) error {
	return runVoid(ctx, a, a.session.KeepAlive)
}

// Shutdown tells the device to shut down, then sleep.
func (a *AsyncSession) Shutdown(ctx context.Context) error {
	return runVoid(ctx, a, a.session.Shutdown)
}

// SetBrightness sets the backlight brightness, 0-100.
func (a *AsyncSession) SetBrightness(ctx context.Context, percent uint8) error {
	return runVoid(ctx, a, func() error { return a.session.SetBrightness(percent) })
}

// Reset restores full brightness and clears every button image.
func (a *AsyncSession) Reset(ctx context.Context) error {
	return runVoid(ctx, a, a.session.Reset)
}

// ClearButtonImage blanks one button's image.
func (a *AsyncSession) ClearButtonImage(ctx context.Context, key uint8) error {
	return runVoid(ctx, a, func() error { return a.session.ClearButtonImage(key) })
}

// ClearAllButtonImages blanks every button's image.
func (a *AsyncSession) ClearAllButtonImages(ctx context.Context) error {
	return runVoid(ctx, a, a.session.ClearAllButtonImages)
}

// SetButtonImage converts img to key's wire format and queues it.
func (a *AsyncSession) SetButtonImage(ctx context.Context, key uint8, img image.Image) error {
	return runVoid(ctx, a, func() error { return a.session.SetButtonImage(key, img) })
}

// SetButtonImageData queues raw, already-encoded image bytes for key.
func (a *AsyncSession) SetButtonImageData(ctx context.Context, key uint8, imageData []byte) error {
	return runVoid(ctx, a, func() error { return a.session.SetButtonImageData(key, imageData) })
}

// Flush writes every queued key image to the device.
func (a *AsyncSession) Flush(ctx context.Context) error {
	return runVoid(ctx, a, a.session.Flush)
}

// SetLogoImage sets the boot logo, for models that support one.
func (a *AsyncSession) SetLogoImage(ctx context.Context, imageData []byte) error {
	return runVoid(ctx, a, func() error { return a.session.SetLogoImage(imageData) })
}

// WriteLCD streams rect.Data to the LCD strip; see Session.WriteLCD.
func (a *AsyncSession) WriteLCD(ctx context.Context, rect ImageRect) error {
	return runVoid(ctx, a, func() error { return a.session.WriteLCD(rect) })
}

// WriteLCDFill fills the whole LCD strip with the given image data.
func (a *AsyncSession) WriteLCDFill(ctx context.Context, imageData []byte) error {
	return runVoid(ctx, a, func() error { return a.session.WriteLCDFill(imageData) })
}

// ReadInput blocks for one input report and decodes it, or until ctx
// is cancelled.
func (a *AsyncSession) ReadInput(ctx context.Context, timeout time.Duration) (Input, error) {
	return run(ctx, a, func() (Input, error) { return a.session.ReadInput(timeout) })
}

// Close releases the underlying device handle.
func (a *AsyncSession) Close(ctx context.Context) error {
	return runVoid(ctx, a, a.session.Close)
}
