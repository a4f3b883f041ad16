package mdeck

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/HopIT-Hub/mdeck-go/internal/imaging"
	"github.com/HopIT-Hub/mdeck-go/internal/mdeckerr"
	"github.com/HopIT-Hub/mdeck-go/internal/model"
	"github.com/HopIT-Hub/mdeck-go/internal/protocol"
	"github.com/HopIT-Hub/mdeck-go/mdeckhid"
)

// connectRetryDelay is how long ConnectWithRetries waits between attempts.
const connectRetryDelay = 100 * time.Millisecond

// imageCacheEntry is one queued key-image write awaiting Flush.
type imageCacheEntry struct {
	deviceKey uint8
	data      []byte
}

// Session owns one open device handle and serializes every command
// sent to it behind a single mutex, mirroring how a USB device can
// only service one in-flight transfer at a time.
type Session struct {
	kind model.Kind
	hid  mdeckhid.Device

	mu          sync.Mutex
	initialized bool
	imageCache  []imageCacheEntry
}

// Connect opens kind/serial through enumerator without retrying.
func Connect(enumerator mdeckhid.Enumerator, kind Kind, serial string) (*Session, error) {
	return tryConnect(enumerator, kind, serial)
}

// ConnectWithRetries opens kind/serial, retrying up to attempts times
// with a short delay between failures.
func ConnectWithRetries(enumerator mdeckhid.Enumerator, kind Kind, serial string, attempts int) (*Session, error) {
	if attempts <= 0 {
		return nil, mdeckerr.ErrUnsupportedOperation
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		s, err := tryConnect(enumerator, kind, serial)
		if err == nil {
			return s, nil
		}
		lastErr = err
		time.Sleep(connectRetryDelay)
	}
	return nil, lastErr
}

func tryConnect(enumerator mdeckhid.Enumerator, kind Kind, serial string) (*Session, error) {
	dev, err := enumerator.OpenSerial(kind.VendorID(), kind.ProductID(), serial)
	if err != nil {
		return nil, fmt.Errorf("connect %s serial %q: %w", kind, serial, err)
	}
	return &Session{kind: kind, hid: dev}, nil
}

// Kind returns the model of the connected device.
func (s *Session) Kind() Kind { return s.kind }

// Manufacturer returns the device's manufacturer string.
func (s *Session) Manufacturer() (string, error) { return s.hid.Manufacturer() }

// Product returns the device's product string.
func (s *Session) Product() (string, error) { return s.hid.Product() }

// SerialNumber returns the device's serial number.
func (s *Session) SerialNumber() (string, error) { return s.hid.SerialNumber() }

// FirmwareVersion reads the firmware version feature report.
func (s *Session) FirmwareVersion() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := protocol.FeatureReportVersionRequest()
	if _, err := s.hid.GetFeatureReport(buf); err != nil {
		return "", fmt.Errorf("read firmware version: %w", err)
	}
	return extractString(buf), nil
}

func extractString(b []byte) string {
	end := len(b)
	for i, c := range b {
		if c == 0 {
			end = i
			break
		}
	}
	return string(b[:end])
}

// initialize sends the one-shot device-initialize packet. It is a
// no-op after the first call, and is invoked at the top of every
// other command so callers never have to call it themselves.
// Must be called with s.mu held.
func (s *Session) initialize() error {
	if s.initialized {
		return nil
	}
	s.initialized = true

	if _, err := s.hid.Write(protocol.InitializePacket(s.kind)); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	return nil
}

// Sleep puts the device to sleep.
func (s *Session) Sleep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return err
	}
	if _, err := s.hid.Write(protocol.SleepPacket(s.kind)); err != nil {
		return fmt.Errorf("sleep: %w", err)
	}
	return nil
}

// KeepAlive sends a periodic keep-alive, preventing the device from
// timing out the connection.
func (s *Session) KeepAlive() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return err
	}
	if _, err := s.hid.Write(protocol.KeepAlivePacket(s.kind)); err != nil {
		return fmt.Errorf("keep alive: %w", err)
	}
	return nil
}

// Shutdown tells the device to shut down, then sleep.
func (s *Session) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return err
	}
	if _, err := s.hid.Write(protocol.ShutdownPacket(s.kind)); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if _, err := s.hid.Write(protocol.SleepPacket(s.kind)); err != nil {
		return fmt.Errorf("shutdown (sleep): %w", err)
	}
	return nil
}

// SetBrightness sets the backlight brightness, 0-100.
func (s *Session) SetBrightness(percent uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return err
	}
	if _, err := s.hid.Write(protocol.BrightnessPacket(s.kind, percent)); err != nil {
		return fmt.Errorf("set brightness: %w", err)
	}
	return nil
}

// Reset restores full brightness and clears every button image.
func (s *Session) Reset() error {
	if err := s.SetBrightness(100); err != nil {
		return err
	}
	return s.ClearAllButtonImages()
}

// ClearButtonImage blanks one button's image. The change is written
// immediately but only takes effect on the device after Flush.
func (s *Session) ClearButtonImage(key uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearButtonImageLocked(key)
}

func (s *Session) clearButtonImageLocked(key uint8) error {
	if err := s.initialize(); err != nil {
		return err
	}

	deviceKey := key
	if key != protocol.CmdClearAll {
		translated, ok := s.kind.LogicalToDevice(key)
		if !ok {
			return &mdeckerr.InvalidKeyIndex{Key: key}
		}
		deviceKey = translated
	}

	if _, err := s.hid.Write(protocol.ClearButtonImagePacket(s.kind, deviceKey)); err != nil {
		return fmt.Errorf("clear button image %d: %w", key, err)
	}
	return nil
}

// ClearAllButtonImages blanks every button's image.
func (s *Session) ClearAllButtonImages() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.clearButtonImageLocked(protocol.CmdClearAll); err != nil {
		return err
	}

	if s.kind.IsV2API() {
		// v2 devices need an explicit flush to commit clearing the background.
		if _, err := s.hid.Write(protocol.FlushPacket(s.kind)); err != nil {
			return fmt.Errorf("clear all button images (flush): %w", err)
		}
	}
	return nil
}

// SetButtonImage converts img to key's wire format and queues it for
// key. The write only reaches the device on the next Flush.
func (s *Session) SetButtonImage(key uint8, img image.Image) error {
	data, err := imaging.Convert(s.kind.KeyImageFormat(), img)
	if err != nil {
		return fmt.Errorf("convert button image %d: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return err
	}
	return s.queueImageLocked(key, data)
}

// SetButtonImageData queues raw, already-encoded image bytes for key.
// The write only reaches the device on the next Flush.
func (s *Session) SetButtonImageData(key uint8, imageData []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return err
	}
	return s.queueImageLocked(key, imageData)
}

func (s *Session) queueImageLocked(key uint8, imageData []byte) error {
	deviceKey, ok := s.kind.LogicalToDevice(key)
	if !ok {
		return &mdeckerr.InvalidKeyIndex{Key: key}
	}

	data := make([]byte, len(imageData))
	copy(data, imageData)
	s.imageCache = append(s.imageCache, imageCacheEntry{deviceKey: deviceKey, data: data})
	return nil
}

// Flush writes every queued key image to the device, then commits
// them with a flush command. A no-op if nothing is queued.
func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return err
	}
	if len(s.imageCache) == 0 {
		return nil
	}

	for _, entry := range s.imageCache {
		if err := s.writeKeyImageLocked(entry.deviceKey, entry.data); err != nil {
			return err
		}
	}

	if _, err := s.hid.Write(protocol.FlushPacket(s.kind)); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	s.imageCache = nil
	return nil
}

func (s *Session) writeKeyImageLocked(deviceKey uint8, imageData []byte) error {
	if _, err := s.hid.Write(protocol.KeyImageAnnouncePacket(s.kind, deviceKey, imageData)); err != nil {
		return fmt.Errorf("announce key image: %w", err)
	}
	length, header := keyImageReportParams(s.kind)
	return s.writeImagePagesLocked(imageData, length, header)
}

func keyImageReportParams(kind model.Kind) (reportLength, headerLength int) {
	if kind.IsV2API() {
		return 1025, 1
	}
	return 513, 1
}

func (s *Session) writeImagePagesLocked(data []byte, reportLength, headerLength int) error {
	for _, page := range imaging.Paginate(data, reportLength, headerLength) {
		if _, err := s.hid.Write(page); err != nil {
			return fmt.Errorf("write image page: %w", err)
		}
	}
	return nil
}

// SetLogoImage sets the boot logo, for models that support one.
func (s *Session) SetLogoImage(imageData []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return err
	}
	if _, _, ok := s.kind.BootLogoSize(); !ok {
		return mdeckerr.ErrUnsupportedOperation
	}

	if _, err := s.hid.Write(protocol.LogoImagePacket(s.kind, imageData)); err != nil {
		return fmt.Errorf("announce logo image: %w", err)
	}
	if _, err := s.hid.Write(protocol.FlushPacket(s.kind)); err != nil {
		return fmt.Errorf("announce logo image (flush): %w", err)
	}

	length, header := keyImageReportParams(s.kind)
	if err := s.writeImagePagesLocked(imageData, length, header); err != nil {
		return err
	}
	return s.assertWriteCompleteLocked()
}

// WriteLCD streams rect.Data to the LCD strip as report pages, each
// reserving 16 bytes of its chunk budget. No position is sent, and
// rect's Width and Height are not used. Only supported on Akp05.
func (s *Session) WriteLCD(rect ImageRect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != model.Akp05 {
		return mdeckerr.ErrUnsupportedOperation
	}
	if err := s.initialize(); err != nil {
		return err
	}
	return s.writeImagePagesLocked(rect.Data, s.kind.PacketLength()+1, 16)
}

// WriteLCDFill fills the whole LCD strip with the given image data.
// Only supported on Akp05.
func (s *Session) WriteLCDFill(imageData []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != model.Akp05 {
		return mdeckerr.ErrUnsupportedOperation
	}
	if err := s.initialize(); err != nil {
		return err
	}
	return s.writeImagePagesLocked(imageData, s.kind.PacketLength()+1, 8)
}

func (s *Session) assertWriteCompleteLocked() error {
	data, err := s.readDataLocked(protocol.InputPacketLength, 1000*time.Millisecond)
	if err != nil {
		return fmt.Errorf("assert write complete: %w", err)
	}
	if len(data) != protocol.InputPacketLength {
		return mdeckerr.ErrBadData
	}
	if !protocol.IsAckOK(data) {
		return mdeckerr.ErrNoAck
	}
	return nil
}

// ReadInput blocks for one input report and decodes it. A zero
// timeout blocks indefinitely.
func (s *Session) ReadInput(timeout time.Duration) (Input, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.initialize(); err != nil {
		return Input{}, err
	}

	data, err := s.readDataLocked(protocol.InputPacketLength, timeout)
	if err != nil {
		return Input{}, fmt.Errorf("read input: %w", err)
	}
	return protocol.ParseInput(s.kind, data)
}

func (s *Session) readDataLocked(length int, timeout time.Duration) ([]byte, error) {
	buf := make([]byte, length)
	var n int
	var err error
	if timeout > 0 {
		n, err = s.hid.ReadTimeout(buf, timeout)
	} else {
		n, err = s.hid.Read(buf)
	}
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Close releases the underlying device handle.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hid.Close(); err != nil {
		log.Printf("[session] close failed for %s: %v", s.kind, err)
		return err
	}
	return nil
}
