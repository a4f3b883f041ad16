package mdeckhid

import (
	"errors"
	"time"
)

// FakeDevice is an in-memory Device double for tests. Writes are
// recorded in order; reads are served from a queue of canned
// responses set up by the test.
type FakeDevice struct {
	Writes [][]byte

	reads    [][]byte
	feature  []byte
	closed   bool
}

// NewFakeDevice returns a FakeDevice with no queued reads.
func NewFakeDevice() *FakeDevice {
	return &FakeDevice{}
}

// QueueRead appends a canned response for the next Read/ReadTimeout call.
func (d *FakeDevice) QueueRead(data []byte) {
	d.reads = append(d.reads, data)
}

// SetFeatureReport sets the bytes GetFeatureReport will return.
func (d *FakeDevice) SetFeatureReport(data []byte) {
	d.feature = data
}

func (d *FakeDevice) Write(b []byte) (int, error) {
	cp := make([]byte, len(b))
	copy(cp, b)
	d.Writes = append(d.Writes, cp)
	return len(b), nil
}

func (d *FakeDevice) Read(b []byte) (int, error) {
	return d.popRead(b)
}

func (d *FakeDevice) ReadTimeout(b []byte, _ time.Duration) (int, error) {
	return d.popRead(b)
}

func (d *FakeDevice) popRead(b []byte) (int, error) {
	if len(d.reads) == 0 {
		return 0, errors.New("mdeckhid: fake device has no queued reads")
	}
	next := d.reads[0]
	d.reads = d.reads[1:]
	n := copy(b, next)
	return n, nil
}

func (d *FakeDevice) GetFeatureReport(b []byte) (int, error) {
	n := copy(b, d.feature)
	return n, nil
}

func (d *FakeDevice) Manufacturer() (string, error) { return "Mirabox", nil }
func (d *FakeDevice) Product() (string, error)      { return "Ajazz", nil }
func (d *FakeDevice) SerialNumber() (string, error) { return "FAKE0001", nil }

func (d *FakeDevice) Close() error {
	d.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (d *FakeDevice) Closed() bool { return d.closed }
